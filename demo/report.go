package demo

import "github.com/amp-labs/amp-container/container"

// Section is one traversal of the container in a single order.
type Section struct {
	Order    string   `json:"order"    yaml:"order"`
	Live     bool     `json:"live"     yaml:"live"`
	Elements []string `json:"elements" yaml:"elements"`

	order container.Order
}

// Removal records what happened when the configured value was removed.
type Removal struct {
	Value string    `json:"value"           yaml:"value"`
	Found bool      `json:"found"           yaml:"found"`
	Size  int       `json:"size"            yaml:"size"`
	Views []Section `json:"views,omitempty" yaml:"views,omitempty"`
}

// Report is everything a run produced, independent of the output format.
type Report struct {
	RunId   string      `json:"run_id"            yaml:"run_id"`
	Type    ElementType `json:"type"              yaml:"type"`
	Input   []string    `json:"input"             yaml:"input"`
	Size    int         `json:"size"              yaml:"size"`
	Views   []Section   `json:"views"             yaml:"views"`
	Removal *Removal    `json:"removal,omitempty" yaml:"removal,omitempty"`
}

func titleOf(order container.Order) string {
	switch order {
	case container.Ascending:
		return "Ascending Order"
	case container.Descending:
		return "Descending Order"
	case container.SideCross:
		return "Side Cross Order"
	case container.Reverse:
		return "Reverse Order"
	case container.Insertion:
		return "Original Order"
	case container.MiddleOut:
		return "Middle Out Order"
	default:
		return order.String()
	}
}
