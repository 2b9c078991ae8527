package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clipy/internal/panel"
)

// PanelView is the widget of one inquiry panel: a header with a toggling
// title and a close button, and details that start hidden
type PanelView struct {
	widget.BaseWidget

	panel        panel.Panel
	localization *Localization

	titleBtn *widget.Button
	closeBtn *widget.Button
	details  *fyne.Container

	onToggle func(index int)
	onClose  func(index int)
	onStream func(item panel.StreamItem)
}

// NewPanelView creates the widget for p
func NewPanelView(p panel.Panel, localization *Localization) *PanelView {
	v := &PanelView{
		panel:        p,
		localization: localization,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	return v
}

// SetCallbacks sets the header and stream actions
func (v *PanelView) SetCallbacks(onToggle, onClose func(index int), onStream func(item panel.StreamItem)) {
	v.onToggle = onToggle
	v.onClose = onClose
	v.onStream = onStream
}

// Index returns the cache index of the panel
func (v *PanelView) Index() int {
	return v.panel.Index
}

// SetExpanded shows or hides the details
func (v *PanelView) SetExpanded(expanded bool) {
	v.panel.Expanded = expanded
	if expanded {
		v.details.Show()
	} else {
		v.details.Hide()
	}
	v.Refresh()
}

// Expanded reports whether details are visible
func (v *PanelView) Expanded() bool {
	return v.panel.Expanded
}

func (v *PanelView) createUI() {
	v.titleBtn = widget.NewButton(cleanText(v.panel.GetDisplayTitle()), func() {
		if v.onToggle != nil {
			v.onToggle(v.panel.Index)
		}
	})
	v.titleBtn.Alignment = widget.ButtonAlignLeading
	v.titleBtn.Importance = widget.LowImportance

	v.closeBtn = widget.NewButton(IconClose, func() {
		if v.onClose != nil {
			v.onClose(v.panel.Index)
		}
	})
	v.closeBtn.Importance = widget.DangerImportance

	v.details = v.buildDetails(v.panel.Details)
	if !v.panel.Expanded {
		v.details.Hide()
	}
}

// CreateRenderer stacks the header row above the details
func (v *PanelView) CreateRenderer() fyne.WidgetRenderer {
	index := widget.NewLabel(fmt.Sprintf(PanelIndexFormat, v.panel.Index))
	header := container.NewBorder(nil, nil, index, v.closeBtn, v.titleBtn)
	return widget.NewSimpleRenderer(container.NewVBox(header, v.details, widget.NewSeparator()))
}

func (v *PanelView) buildDetails(details []panel.Detail) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, len(details)*2)
	for _, d := range details {
		term := widget.NewLabelWithStyle(d.Term, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		objects = append(objects, term, v.buildNode(d.Value))
	}
	return container.New(layout.NewFormLayout(), objects...)
}

func (v *PanelView) buildNode(n panel.Node) fyne.CanvasObject {
	switch node := n.(type) {
	case panel.Text:
		label := widget.NewLabel(node.Value)
		label.Wrapping = fyne.TextWrapWord
		return label
	case panel.List:
		items := make([]fyne.CanvasObject, 0, len(node.Items))
		for _, item := range node.Items {
			if t, ok := item.(panel.Text); ok {
				items = append(items, widget.NewLabel("• "+t.Value))
				continue
			}
			items = append(items, v.buildNode(item))
		}
		return container.NewVBox(items...)
	case panel.Dict:
		return v.buildDetails(node.Details)
	case panel.Streams:
		items := make([]fyne.CanvasObject, 0, len(node.Items))
		for _, s := range node.Items {
			item := s
			btn := widget.NewButton(fmt.Sprintf("%d. %s", item.Index, item.Display), func() {
				if v.onStream != nil {
					v.onStream(item)
				}
			})
			btn.Alignment = widget.ButtonAlignLeading
			items = append(items, btn)
		}
		return container.NewVBox(items...)
	default:
		return widget.NewLabel("")
	}
}
