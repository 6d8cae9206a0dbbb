package model

// ElementKind represents the kind of document element
type ElementKind int

const (
	ElementKindUnknown ElementKind = iota
	ElementKindHeading
	ElementKindParagraph
	ElementKindList
	ElementKindImage
	ElementKindFigure
	ElementKindTable
	ElementKindTableOfContents
	ElementKindCustomDirective
	ElementKindFieldList
)

func (ek ElementKind) String() string {
	switch ek {
	case ElementKindHeading:
		return "Heading"
	case ElementKindParagraph:
		return "Paragraph"
	case ElementKindList:
		return "List"
	case ElementKindImage:
		return "Image"
	case ElementKindFigure:
		return "Figure"
	case ElementKindTable:
		return "Table"
	case ElementKindTableOfContents:
		return "TableOfContents"
	case ElementKindCustomDirective:
		return "CustomDirective"
	case ElementKindFieldList:
		return "FieldList"
	default:
		return "Unknown"
	}
}

// Origin records where an element came from in the source markup. StyleName
// is the originating style or class name, used for directive dispatch and
// debugging. Raw is an optional snapshot of the source block kept for
// diagnostics only; it is never re-parsed.
type Origin struct {
	StyleName string
	Raw       string
}

// Source returns the origin itself, so every element type that embeds
// Origin satisfies the Element interface's Source method.
func (o Origin) Source() Origin { return o }

// Element is the interface for all document elements
type Element interface {
	Kind() ElementKind
	Source() Origin
}

// Heading represents a section heading
type Heading struct {
	Origin
	Text  string
	Level int // 1-6
}

func (h *Heading) Kind() ElementKind { return ElementKindHeading }

// NewHeading creates a heading with the level clamped to the valid 1-6 range.
func NewHeading(level int, text string) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Heading{Level: level, Text: text}
}

// Paragraph represents a paragraph of text. Content carries inline markup
// already converted to RST syntax (**bold**, *italic*, ``literal``, roles,
// links).
type Paragraph struct {
	Origin
	Content      string
	IsBlockQuote bool
}

func (p *Paragraph) Kind() ElementKind { return ElementKindParagraph }

// ListType represents the type of list.
type ListType int

const (
	ListTypeUnordered ListType = iota // Bullet list
	ListTypeOrdered                   // Numbered list
)

func (lt ListType) String() string {
	if lt == ListTypeOrdered {
		return "Ordered"
	}
	return "Unordered"
}

// List represents a list (ordered or unordered)
type List struct {
	Origin
	Type  ListType
	Items []*ListItem

	// Flat and Indent are parse-time hints: the parser emits one flat
	// single-item list per source list paragraph, and the post-processor
	// merges runs of them into one nested tree. Both fields are zeroed
	// once the list is inside the final element sequence.
	Flat   bool
	Indent int
}

func (l *List) Kind() ElementKind { return ElementKindList }

// ListItem represents a single list item
type ListItem struct {
	Content string
	Nested  *List
}

// Field is a single name/value entry of a field list. Value may be empty
// but is always present.
type Field struct {
	Name  string
	Value string
}

// FieldList represents a flat metadata block of name/value fields.
type FieldList struct {
	Origin
	Fields []Field
}

func (fl *FieldList) Kind() ElementKind { return ElementKindFieldList }
