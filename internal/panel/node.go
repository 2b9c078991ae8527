package panel

import "github.com/ytget/clipy/internal/jsonx"

// Kind identifies the shape of a detail value
type Kind int

const (
	KindText Kind = iota
	KindList
	KindDict
	KindStreams
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindStreams:
		return "streams"
	default:
		return "unknown"
	}
}

// Node is a rendered detail value
type Node interface {
	Kind() Kind
}

// Text is a scalar shown as plain text
type Text struct {
	Value string
}

// List is a bulleted list, one item per array element
type List struct {
	Items []Node
}

// Dict is a nested definition list
type Dict struct {
	Details []Detail
}

// Streams is the ordered list of downloadable streams, numbered from 0
type Streams struct {
	Items []StreamItem
}

// StreamItem is one clickable entry of a Streams list. Panel is the cache
// index of the result the stream was rendered from.
type StreamItem struct {
	Panel   int
	Index   int
	VID     string
	SID     string
	Display string
}

// Detail is one term/value row of a definition list
type Detail struct {
	Term  string
	Value Node
}

func (Text) Kind() Kind    { return KindText }
func (List) Kind() Kind    { return KindList }
func (Dict) Kind() Kind    { return KindDict }
func (Streams) Kind() Kind { return KindStreams }

// renderValue picks the node for a decoded value
func renderValue(v any) Node {
	switch val := v.(type) {
	case []any:
		items := make([]Node, 0, len(val))
		for _, item := range val {
			items = append(items, renderValue(item))
		}
		return List{Items: items}
	case *jsonx.Object:
		return Dict{Details: renderDetails(val)}
	default:
		return Text{Value: jsonx.String(v)}
	}
}
