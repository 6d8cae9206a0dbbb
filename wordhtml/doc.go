// Package wordhtml parses the HTML that word processors export into the
// typed element sequence defined by the model package.
//
// Word HTML is quirky: headings may be plain paragraphs with an
// mso-outline-level style, lists arrive as flat MsoListParagraph blocks
// whose nesting must be recovered from left margins, tables are sometimes
// layout scaffolding around images, and custom constructs ride in on style
// names. The parser classifies every block through a fixed, ordered rule
// list (see classify) so each heuristic stays testable on its own.
//
// Parsing never fails on malformed content. Blocks that fit no rule
// degrade to plain paragraphs, and anything noteworthy is recorded as a
// warning on the returned document rather than raised as an error.
package wordhtml
