package rstword

import (
	"fmt"
	"io"
)

// FromHTML creates a Converter reading from an HTML string. The returned
// Converter is immutable and may be converted repeatedly, concurrently if
// needed.
//
// Example:
//
//	res, err := rstword.FromHTML(htmlSource).Convert()
func FromHTML(src string) *Converter {
	return &Converter{
		html: src,
		opts: DefaultConvertOptions(),
	}
}

// FromReader creates a Converter reading from r. The reader is consumed by
// Convert, so a Converter built this way is good for one conversion; use
// FromHTML or Open when the Converter needs to be reused.
//
// Example:
//
//	res, err := rstword.FromReader(file).Convert()
func FromReader(r io.Reader) *Converter {
	c := &Converter{
		src:  r,
		opts: DefaultConvertOptions(),
	}
	if r == nil {
		c.err = fmt.Errorf("no input reader")
	}
	return c
}

// Open creates a Converter reading from the named file. The file is opened
// when Convert runs and closed before it returns.
//
// Example:
//
//	res, err := rstword.Open("export.html").Convert()
func Open(path string) *Converter {
	return &Converter{
		filename: path,
		opts:     DefaultConvertOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := rstword.Must(rstword.Open("export.html").Convert())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert wraps a Convert call and panics if the error is non-nil.
// It is intended for use in scripts or tests where error handling would
// be cumbersome.
//
// Example:
//
//	text := rstword.MustConvert(rstword.FromHTML(src).Convert()).Text
func MustConvert(res Result, err error) Result {
	if err != nil {
		panic(err)
	}
	return res
}
