package wordhtml

// Options holds configuration for a parse.
type Options struct {
	// DirectiveStylePrefix selects which style/class names dispatch to
	// the directive grammar: with the default prefix a block styled
	// "rst-note" becomes a "note" directive.
	DirectiveStylePrefix string

	// Charset forces the source character encoding by IANA name. When
	// empty the encoding is sniffed from the BOM, meta tags, and content.
	Charset string
}

// DefaultOptions returns the default parse options.
func DefaultOptions() Options {
	return Options{
		DirectiveStylePrefix: "rst-",
	}
}
