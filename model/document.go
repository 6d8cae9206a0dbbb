package model

import "fmt"

// Document represents one fully parsed source document: the element
// sequence, the images referenced by it, document metadata, and any
// warnings accumulated while parsing.
type Document struct {
	Elements []Element
	Images   []*ImageRef
	Meta     Metadata
	Warnings []Warning
}

// Metadata contains document-level information taken from the source head.
type Metadata struct {
	Title     string
	Generator string
	Charset   string
	// Remaining meta name/content pairs
	Attrs map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Elements: make([]Element, 0),
		Images:   make([]*ImageRef, 0),
		Meta: Metadata{
			Attrs: make(map[string]string),
		},
	}
}

// AddElement appends an element to the document. Nil elements are skipped,
// so parse paths that produce nothing for a block can return nil freely.
func (d *Document) AddElement(e Element) {
	if e == nil {
		return
	}
	d.Elements = append(d.Elements, e)
}

// AddImage appends an image reference to the document.
func (d *Document) AddImage(ref *ImageRef) {
	if ref == nil {
		return
	}
	d.Images = append(d.Images, ref)
}

// Warnf records a formatted warning on the document.
func (d *Document) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, Warning(fmt.Sprintf(format, args...)))
}

// ElementCount returns the number of elements in the document
func (d *Document) ElementCount() int {
	return len(d.Elements)
}

// Headings returns all headings in document order.
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, e := range d.Elements {
		if h, ok := e.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, e := range d.Elements {
		if t, ok := e.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
