package rstword

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ericb-bissell/rst-word-addin/rst"
	"github.com/ericb-bissell/rst-word-addin/transform"
	"github.com/ericb-bissell/rst-word-addin/wordhtml"
)

// Converter provides a fluent interface for configuring and running a
// conversion. Each configuration method returns a new Converter instance,
// making a configured Converter immutable and safe for concurrent use.
type Converter struct {
	// Source; exactly one is consulted, in this order.
	filename string
	src      io.Reader
	html     string

	// Configuration
	opts ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter. ConvertOptions holds only value
// fields, so the struct copy is a deep copy.
func (c *Converter) clone() *Converter {
	clone := *c
	return &clone
}

// HeadingOverline renders level-1 headings with an overline matching the
// underline in character and length.
//
// Example:
//
//	res, err := rstword.FromHTML(src).HeadingOverline().Convert()
func (c *Converter) HeadingOverline() *Converter {
	nc := c.clone()
	nc.opts.headingOverline = true
	return nc
}

// WrapWidth wraps paragraph, block-quote, and list text at the given
// column. Zero disables wrapping, which is the default.
//
// Example:
//
//	res, err := rstword.FromHTML(src).WrapWidth(100).Convert()
func (c *Converter) WrapWidth(width int) *Converter {
	nc := c.clone()
	nc.opts.wrapWidth = width
	return nc
}

// DirectiveStylePrefix selects which style names dispatch to the directive
// grammar. With the default prefix "rst-", a block styled "rst-note"
// becomes a note directive.
//
// Example:
//
//	res, err := rstword.FromHTML(src).DirectiveStylePrefix("docutils-").Convert()
func (c *Converter) DirectiveStylePrefix(prefix string) *Converter {
	nc := c.clone()
	nc.opts.directiveStylePrefix = prefix
	return nc
}

// Charset forces the source character encoding by IANA name, bypassing
// detection. An unknown name fails the conversion; it is a configuration
// error, not a content problem.
//
// Example:
//
//	res, err := rstword.Open("legacy.html").Charset("windows-1252").Convert()
func (c *Converter) Charset(name string) *Converter {
	nc := c.clone()
	nc.opts.charset = name
	return nc
}

// Convert runs the conversion: parse the source HTML, fold the element
// sequence into its final shape, render it as reStructuredText, and lint
// the output. Warnings from every stage accumulate on the Result; only
// input and configuration problems return an error.
//
// Example:
//
//	res, err := rstword.FromHTML(src).Convert()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Text)
func (c *Converter) Convert() (Result, error) {
	if c.err != nil {
		return Result{}, c.err
	}

	input, closeInput, err := c.open()
	if err != nil {
		return Result{}, err
	}
	defer closeInput()

	doc, err := wordhtml.Parse(input, wordhtml.Options{
		DirectiveStylePrefix: c.opts.directiveStylePrefix,
		Charset:              c.opts.charset,
	})
	if err != nil {
		return Result{}, err
	}

	elements := transform.Apply(doc.Elements)

	text, renderWarnings := rst.Render(elements, rst.Options{
		HeadingOverline: c.opts.headingOverline,
		WrapWidth:       c.opts.wrapWidth,
	})

	var warnings []Warning
	warnings = append(warnings, doc.Warnings...)
	warnings = append(warnings, renderWarnings...)
	warnings = append(warnings, rst.Lint(text)...)

	return Result{
		Text:     text,
		Images:   doc.Images,
		Meta:     doc.Meta,
		Warnings: warnings,
	}, nil
}

// open resolves the configured source to a reader. The returned close
// function is a no-op except for file sources.
func (c *Converter) open() (io.Reader, func() error, error) {
	if c.filename != "" {
		f, err := os.Open(c.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", c.filename, err)
		}
		return f, f.Close, nil
	}
	if c.src != nil {
		return c.src, func() error { return nil }, nil
	}
	return strings.NewReader(c.html), func() error { return nil }, nil
}
