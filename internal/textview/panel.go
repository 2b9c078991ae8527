package textview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/clipy/internal/panel"
)

const indentStep = "  "

// Panel renders p inside a bordered box. Details are shown only when the
// panel is expanded.
func Panel(p panel.Panel) string {
	header := titleStyle.Render(p.GetDisplayTitle())
	if p.Index > 0 {
		header = fmt.Sprintf("%s %s", termStyle.Render(fmt.Sprintf("#%d", p.Index)), header)
	}

	if !p.Expanded || len(p.Details) == 0 {
		return panelStyle.Render(header)
	}

	var b strings.Builder
	writeDetails(&b, p.Details, "")
	body := strings.TrimRight(b.String(), "\n")
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// Panels renders ps one below the other
func Panels(ps []panel.Panel) string {
	rendered := make([]string, 0, len(ps))
	for _, p := range ps {
		rendered = append(rendered, Panel(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func writeDetails(b *strings.Builder, details []panel.Detail, indent string) {
	for _, d := range details {
		term := termStyle.Render(d.Term + ":")
		switch v := d.Value.(type) {
		case panel.Text:
			fmt.Fprintf(b, "%s%s %s\n", indent, term, v.Value)
		default:
			fmt.Fprintf(b, "%s%s\n", indent, term)
			writeNode(b, v, indent+indentStep)
		}
	}
}

func writeNode(b *strings.Builder, n panel.Node, indent string) {
	switch v := n.(type) {
	case panel.Text:
		fmt.Fprintf(b, "%s%s\n", indent, v.Value)
	case panel.List:
		for _, item := range v.Items {
			if t, ok := item.(panel.Text); ok {
				fmt.Fprintf(b, "%s• %s\n", indent, t.Value)
				continue
			}
			fmt.Fprintf(b, "%s•\n", indent)
			writeNode(b, item, indent+indentStep)
		}
	case panel.Dict:
		writeDetails(b, v.Details, indent)
	case panel.Streams:
		for _, s := range v.Items {
			fmt.Fprintf(b, "%s%s %s\n", indent, streamStyle.Render(fmt.Sprintf("%d.", s.Index)), s.Display)
		}
	}
}
