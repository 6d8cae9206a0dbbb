package model

// DirectiveOption is one name/value option of a custom directive. A flag
// option carries an empty Value.
type DirectiveOption struct {
	Name  string
	Value string
}

// CustomDirective represents a style-driven directive block. Options keep
// their insertion order; order is part of the rendered output contract.
type CustomDirective struct {
	Origin
	Name     string
	Argument string
	Options  []DirectiveOption
	Content  string
}

func (cd *CustomDirective) Kind() ElementKind { return ElementKindCustomDirective }

// Option returns the value of the named option and whether it is present.
func (cd *CustomDirective) Option(name string) (string, bool) {
	for _, opt := range cd.Options {
		if opt.Name == name {
			return opt.Value, true
		}
	}
	return "", false
}

// SetOption updates the named option in place or appends it, preserving
// insertion order.
func (cd *CustomDirective) SetOption(name, value string) {
	for i := range cd.Options {
		if cd.Options[i].Name == name {
			cd.Options[i].Value = value
			return
		}
	}
	cd.Options = append(cd.Options, DirectiveOption{Name: name, Value: value})
}

// TOCOptions carries the contents directive options. Depth and Backlinks
// are passed through as written in the source; they are not validated.
type TOCOptions struct {
	Title     string
	Depth     string
	Local     bool
	Backlinks string
	Class     string
}

// TableOfContents represents a table-of-contents marker
type TableOfContents struct {
	Origin
	Options TOCOptions
}

func (toc *TableOfContents) Kind() ElementKind { return ElementKindTableOfContents }
