package panel

import (
	"github.com/ytget/clipy/internal/jsonx"
	"github.com/ytget/clipy/internal/model"
)

// Panel is the rendered form of one inquiry result
type Panel struct {
	Index    int    // cache index of the source result
	VID      string // video id
	Title    string // header text, toggles the details
	Details  []Detail
	Expanded bool // details visible
}

// Render builds the panel for obj stored under index. Details start hidden.
func Render(index int, obj *jsonx.Object) *Panel {
	p := &Panel{
		Index:   index,
		VID:     obj.Text(model.KeyVID),
		Title:   obj.Text(model.KeyTitle),
		Details: renderDetails(obj),
	}

	for i, d := range p.Details {
		if d.Term != model.KeyStreams {
			continue
		}
		raw, _ := obj.Get(model.KeyStreams)
		if _, ok := raw.([]any); ok {
			p.Details[i].Value = renderStreams(raw, index, p.VID)
		}
	}
	return p
}

// Streams returns the panel's stream list, nil if it has none
func (p *Panel) Streams() *Streams {
	for _, d := range p.Details {
		if s, ok := d.Value.(Streams); ok {
			return &s
		}
	}
	return nil
}

// GetDisplayTitle returns the title, or the video id when the title is empty
func (p *Panel) GetDisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.VID
}

func renderDetails(obj *jsonx.Object) []Detail {
	entries := obj.Entries()
	details := make([]Detail, 0, len(entries))
	for _, e := range entries {
		details = append(details, Detail{Term: e.Key, Value: renderValue(e.Value)})
	}
	return details
}

func renderStreams(v any, index int, vid string) Streams {
	streams := model.StreamsFromValue(v)
	items := make([]StreamItem, 0, len(streams))
	for _, s := range streams {
		items = append(items, StreamItem{
			Panel:   index,
			Index:   s.Index,
			VID:     vid,
			SID:     s.SID,
			Display: s.Display,
		})
	}
	return Streams{Items: items}
}
