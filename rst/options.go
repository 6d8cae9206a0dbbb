package rst

// Options control how the element sequence is rendered.
type Options struct {
	// HeadingOverline adds an overline above level-1 headings, matching
	// the underline character and length.
	HeadingOverline bool

	// WrapWidth is the column at which paragraph, block-quote, and list
	// text wraps. Zero or negative disables wrapping. Headings, directive
	// bodies, and grid tables never wrap.
	WrapWidth int
}

// DefaultOptions returns the default rendering options: no overlines, no
// wrapping.
func DefaultOptions() Options {
	return Options{}
}
