package ui

// UIPanel is a plain container. It is the usual main surface and the
// body of dialogs.
type UIPanel struct {
	Common[*UIPanel]
}

func Panel(children ...Control) *UIPanel {
	p := &UIPanel{}
	p.Common = NewCommon(p)
	p.base.Add(children...)
	return p
}
