package wordhtml

import (
	"testing"

	"github.com/ericb-bissell/rst-word-addin/model"
)

func TestParse_TOCRun(t *testing.T) {
	doc := parseFixture(t, `
<p class=MsoTocHeading>Table of Contents</p>
<p class=MsoToc1><a href="#_Toc100">Introduction</a></p>
<p class=MsoToc1><a href="#_Toc101">Installation</a></p>
<p class=MsoToc2><a href="#_Toc102">From source</a></p>
<p class=MsoNormal>After the contents.</p>`)

	if len(doc.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(doc.Elements))
	}

	toc, ok := doc.Elements[0].(*model.TableOfContents)
	if !ok {
		t.Fatalf("element 0 = %T, want *model.TableOfContents", doc.Elements[0])
	}
	if toc.Options.Title != "Table of Contents" {
		t.Errorf("Title = %q", toc.Options.Title)
	}
	if toc.Options.Depth != "2" {
		t.Errorf("Depth = %q, want '2'", toc.Options.Depth)
	}

	p, ok := doc.Elements[1].(*model.Paragraph)
	if !ok || p.Content != "After the contents." {
		t.Errorf("element 1 = %#v", doc.Elements[1])
	}
}

func TestParse_TOCWithoutHeading(t *testing.T) {
	doc := parseFixture(t, `
<p class=MsoToc1><a href="#_Toc1">One</a></p>
<p class=MsoToc1><a href="#_Toc2">Two</a></p>`)

	if len(doc.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(doc.Elements))
	}
	toc := doc.Elements[0].(*model.TableOfContents)
	if toc.Options.Title != "" {
		t.Errorf("Title = %q, want empty", toc.Options.Title)
	}
	if toc.Options.Depth != "1" {
		t.Errorf("Depth = %q, want '1'", toc.Options.Depth)
	}
}

func TestParse_StructuralTOC(t *testing.T) {
	doc := parseFixture(t, `
<div id=toc>
<p><a href="#intro">Introduction</a></p>
<p><a href="#setup">Setup</a></p>
<p><a href="#usage">Usage</a></p>
</div>
<p>Body text.</p>`)

	if len(doc.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(doc.Elements))
	}
	toc, ok := doc.Elements[0].(*model.TableOfContents)
	if !ok {
		t.Fatalf("element 0 = %T, want *model.TableOfContents", doc.Elements[0])
	}
	if toc.Options.Depth != "" {
		t.Errorf("Depth = %q, want empty for structural match", toc.Options.Depth)
	}
}

func TestIsTOCBlock(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"msotoc class", `<p class=MsoToc3>x</p>`, true},
		{"toc heading class", `<p class=MsoTocHeading>x</p>`, true},
		{"plain toc class", `<p class=toc-entry>x</p>`, true},
		{"toc id", `<div id=toc><p><a href="#a">A</a></p></div>`, true},
		{"normal paragraph", `<p class=MsoNormal>x</p>`, false},
		{"fragment link shape", `<div><p><a href="#a">A</a></p><p><a href="#b">B</a></p><p><a href="#c">C</a></p></div>`, true},
		{"too few links", `<div><p><a href="#a">A</a></p><p><a href="#b">B</a></p></div>`, false},
		{"external links", `<div><p><a href="http://x/a">A</a></p><p><a href="http://x/b">B</a></p><p><a href="http://x/c">C</a></p></div>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTOCBlock(firstBlock(t, tt.src)); got != tt.want {
				t.Errorf("isTOCBlock = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasFragmentLinkShape_SectionWrapperExcluded(t *testing.T) {
	// a wrapper holding a TOC plus real content is not itself a TOC
	src := `<div class=WordSection1>
<p><a href="#a">A</a></p>
<p><a href="#b">B</a></p>
<p><a href="#c">C</a></p>
<p>A long run of ordinary body text that dwarfs the link text in this
section and keeps the wrapper from looking like a table of contents, so
the document body survives the TOC heuristic intact.</p>
</div>`

	if hasFragmentLinkShape(firstBlock(t, src)) {
		t.Error("section wrapper with body text matched the TOC shape")
	}
}
