package rstword

// ConvertOptions holds configuration for a conversion. Values are set
// through the Converter's fluent methods.
type ConvertOptions struct {
	// Rendering
	headingOverline bool
	wrapWidth       int

	// Parsing
	directiveStylePrefix string
	charset              string
}

// DefaultConvertOptions returns the default conversion options: no heading
// overlines, no wrapping, the "rst-" directive style prefix, and detected
// character encoding.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		directiveStylePrefix: "rst-",
	}
}
