//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once on app start with a capacity in span events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring.init(capacity)
}

// Start opens a span and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	begin := time.Now().UnixNano()
	ring.push(span{at: begin, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < begin {
			end = begin
		}
		ring.push(span{at: end, frame: id})
	}
}

// Dump writes the recorded spans as a speedscope profile into the temp dir
// and returns its path.
func Dump() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	path := filepath.Join(os.TempDir(), "canopy.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	return path, nil
}

// ---------- event ring ----------

type span struct {
	at    int64
	frame int
	open  bool
}

type spanRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []span
}

func (r *spanRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]span, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *spanRing) push(e span) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained spans in write order.
func (r *spanRing) snapshot() []span {
	n := r.write.Load()
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]span, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring spanRing

// ---------- frame names ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

// ---------- speedscope ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first span
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []span, path string) error {
	muFrames.Lock()
	fs := make([]ssFrame, len(frames))
	for i, name := range frames {
		fs[i] = ssFrame{Name: name}
	}
	muFrames.Unlock()

	base := evs[0].at
	out := make([]ssEvent, 0, len(evs))
	var stack []int
	var last int64

	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			// the ring may have dropped the matching open
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	// speedscope wants balanced events
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "input dispatch",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "canopy-profiler",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
