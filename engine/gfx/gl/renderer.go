package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// RendererGL draws batched solid quads in framebuffer pixel space with
// (0, 0) at the top-left. It implements core.Renderer and ui.Painter.
type RendererGL struct {
	win     core.Window
	program uint32
	uView   int32
	vao     uint32
	vbo     uint32
	ebo     uint32

	batch  batch
	stats  Statistics
	width  int
	height int
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, batch: newBatch(0)}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uView = gl.GetUniformLocation(r.program, gl.Str("uView\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, cap(r.batch.verts)*4, nil, gl.DYNAMIC_DRAW)

	inds := quadIndices(r.batch.maxQuads)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(inds)*4, gl.Ptr(inds), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	const stride = vStride * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear also starts a new frame's statistics.
func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	r.stats = Statistics{}
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// FillRect queues a quad; the batch is drawn on Flush or when full.
func (r *RendererGL) FillRect(x, y, w, h float32, c colors.Color) {
	if r.batch.full() {
		r.Flush()
	}
	if r.batch.add(x, y, w, h, c) {
		r.stats.QuadCount++
	}
}

func (r *RendererGL) Flush() {
	if r.batch.quads == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(r.uView, float32(r.width), float32(r.height))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.batch.verts)*4, gl.Ptr(r.batch.verts))
	gl.DrawElements(gl.TRIANGLES, int32(r.batch.quads*indsPerQuad), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.stats.DrawCalls++
	r.batch.reset()
}

// Stats returns the counts of the frame in progress.
func (r *RendererGL) Stats() Statistics { return r.stats }

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
uniform vec2 uView;
out vec4 vColor;
void main() {
    vColor = aColor;
    vec2 ndc = aPos / uView * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;
void main() {
    FragColor = vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
