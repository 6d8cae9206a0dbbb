// Package rstword converts the HTML that word processors export into
// reStructuredText.
//
// Basic usage:
//
//	res, err := rstword.FromHTML(htmlSource).Convert()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Text)
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", rstword.FormatWarnings(res.Warnings))
//	}
//
// With options:
//
//	res, err := rstword.Open("report.html").
//	    HeadingOverline().
//	    WrapWidth(100).
//	    Convert()
//
// Conversion never fails on malformed content: blocks the converter cannot
// classify degrade to plain paragraphs and the problems encountered along
// the way are reported as warnings on the Result. For lower-level control,
// the wordhtml, transform, and rst packages are also available.
package rstword
