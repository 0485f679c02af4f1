package models

// Block is one node in a rich-text body. The store delivers a
// loosely-typed ordered tree; the renderer dispatches on Type and
// must degrade gracefully on kinds it does not recognize.
type Block struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type,omitempty"`
	Style    string    `json:"style,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	// Image block fields
	Asset   AssetRef `json:"asset,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	Caption string   `json:"caption,omitempty"`

	// Callout block fields
	Tone string `json:"tone,omitempty"`
	Text string `json:"text,omitempty"`
}

// Span is an inline run of text carrying zero or more marks.
// A mark is either a decorator name (strong, em) or the key
// of a mark definition on the enclosing block.
type Span struct {
	Type  string   `json:"_type,omitempty"`
	Text  string   `json:"text,omitempty"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by key from span marks,
// in practice a link or an internal reference
type MarkDef struct {
	Key  string `json:"_key,omitempty"`
	Type string `json:"_type,omitempty"`
	Href string `json:"href,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// PlainText flattens the block's inline spans, used for
// excerpt derivation and structured data
func (b *Block) PlainText() string {
	var out string
	for _, child := range b.Children {
		out += child.Text
	}
	return out
}
