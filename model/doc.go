// Package model provides the intermediate representation (IR) for converted
// document content.
//
// This package defines the data structures that represent the semantic
// structure of a word-processor document between parsing and rendering. The
// parser produces these types, the post-processing pass reshapes them, and
// the renderer consumes them without further mutation.
//
// # Document Structure
//
// The [Document] type holds the complete parse result: the ordered element
// sequence, the image references it mentions, head metadata, and warnings:
//
//	doc := model.NewDocument()
//	doc.AddElement(model.NewHeading(1, "Introduction"))
//
// # Elements
//
// All document content implements the [Element] interface, discriminated by
// [ElementKind] with ElementKindUnknown as the total-match fallback. The
// concrete types are:
//
//   - [Heading] - section headings (levels 1-6, clamped)
//   - [Paragraph] - text paragraphs, optionally block-quoted
//   - [List] - ordered or unordered lists with nesting
//   - [Image], [Figure] - embedded images, with or without a caption
//   - [Table] - tables with cells, row/column spans, and directive options
//   - [TableOfContents] - contents markers
//   - [CustomDirective] - style-driven directive blocks
//   - [FieldList] - flat name/value metadata blocks
//
// Every element embeds [Origin], recording the source style name that
// produced it and an optional raw snapshot for diagnostics.
//
// # Lifecycle
//
// Elements are created during parsing, mutated only by the post-processing
// pass (list reconstruction, directive merging, caption attachment), and
// are read-only thereafter. [List.Flat] and [List.Indent] exist solely to
// carry parse-time indentation hints into that pass and are zeroed by it.
//
// # Images
//
// An [ImageRef] ties an [Image] or [Figure] to its extracted payload. When
// Base64Data is empty the payload could not be inlined and the host must
// resolve it before packaging; the conversion itself proceeds with a
// warning.
package model
