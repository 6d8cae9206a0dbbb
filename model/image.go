package model

import "github.com/ericb-bissell/rst-word-addin/imgformat"

// ImageOptions mirrors the option surface of the RST image directive. All
// fields are optional; empty values are omitted when rendering.
type ImageOptions struct {
	URI     string
	Alt     string
	Width   string
	Height  string
	Scale   string
	Align   string
	Target  string
	Class   string
	Name    string
	Loading string
}

// Image represents an embedded image
type Image struct {
	Origin
	Options ImageOptions

	// Ref binds the image to its extracted payload. It is created by the
	// parser and consumed by the renderer and by the host packaging step.
	Ref *ImageRef
}

func (i *Image) Kind() ElementKind { return ElementKindImage }

// Figure represents an image bound to a caption and figure layout options
type Figure struct {
	Origin
	Options      ImageOptions
	Caption      string
	Legend       string
	FigWidth     string
	FigClass     string
	FigName      string
	FigureNumber string
	Ref          *ImageRef
}

func (f *Figure) Kind() ElementKind { return ElementKindFigure }

// ImageRef identifies one extracted image payload. Base64Data may be empty,
// which signals that the host must resolve the payload externally before
// packaging. Width and Height are pixel dimensions, zero when unknown.
type ImageRef struct {
	ID         int
	Filename   string
	Format     imgformat.Format
	Base64Data string
	Width      int
	Height     int
}
