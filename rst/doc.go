// Package rst renders the typed element sequence of the model package as
// reStructuredText.
//
// Render walks the sequence once, formatting each element kind with its own
// generator and joining the resulting blocks with single blank lines:
// adorned headings, wrapped paragraphs, nested lists, grid tables, and the
// image, figure, table, and contents directives. Directive option order is
// fixed per directive, so equal input always produces byte-identical
// output.
//
// Lint performs an advisory scan of finished text for the problems docutils
// trips over most: unpaired inline markers, short heading underlines, and
// literal tabs. Both Render and Lint report findings as warning values and
// never fail.
package rst
