package wordhtml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ericb-bissell/rst-word-addin/model"
)

var (
	tocClassRe = regexp.MustCompile(`(?i)^(?:mso)?toc`)
	tocLevelRe = regexp.MustCompile(`(?i)^msotoc([1-9])$`)
)

// isTOCBlock reports whether a block belongs to a generated table of
// contents: a MsoToc*/toc* class or id, or a container whose links mostly
// point at in-document fragments.
func isTOCBlock(n *html.Node) bool {
	for _, c := range classes(n) {
		if tocClassRe.MatchString(c) {
			return true
		}
	}
	if tocClassRe.MatchString(attrVal(n, "id")) {
		return true
	}
	switch n.Data {
	case "nav", "div", "ul", "ol":
		return hasFragmentLinkShape(n)
	}
	return false
}

// hasFragmentLinkShape matches the structural shape of a generated table
// of contents: at least three links, at least four fifths of them fragment
// references, and the links carrying most of the container's text. The
// last condition keeps a section wrapper that merely contains a TOC (plus
// body text) from matching as one.
func hasFragmentLinkShape(n *html.Node) bool {
	sel := goquery.NewDocumentFromNode(n)
	links := sel.Find("a[href]")
	total := links.Length()
	if total < 3 {
		return false
	}

	frag := 0
	linkLen := 0
	links.Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); strings.HasPrefix(href, "#") {
			frag++
		}
		linkLen += len(strings.Join(strings.Fields(s.Text()), ""))
	})
	if frag*5 < total*4 {
		return false
	}

	// lengths are compared space-free so block boundaries don't dilute
	// short entries
	textLen := len(strings.Join(strings.Fields(rawText(n)), ""))
	return linkLen*10 >= textLen*7
}

// parseTOCRun consumes consecutive TOC blocks starting at index i and
// returns the marker plus the number of blocks consumed. Entry text is
// dropped: the rendered contents directive regenerates the listing. Depth
// comes from the deepest MsoTocN class seen; the title from a TOC heading
// block at the start of the run.
func (p *parser) parseTOCRun(blocks []*html.Node, i int) (*model.TableOfContents, int) {
	toc := &model.TableOfContents{Origin: model.Origin{StyleName: styleName(blocks[i])}}

	maxLevel := 0
	count := 0
	for i+count < len(blocks) && isTOCBlock(blocks[i+count]) {
		scanTOCBlock(blocks[i+count], toc, &maxLevel)
		count++
	}

	if maxLevel > 0 {
		toc.Options.Depth = strconv.Itoa(maxLevel)
	}
	return toc, count
}

// scanTOCBlock inspects one consumed block and its descendants for entry
// levels and a heading. Word wraps TOC paragraphs in a single div often
// enough that looking only at the top-level node would miss the levels.
func scanTOCBlock(n *html.Node, toc *model.TableOfContents, maxLevel *int) {
	if n.Type == html.ElementNode {
		for _, c := range classes(n) {
			if m := tocLevelRe.FindStringSubmatch(c); m != nil {
				if lvl, _ := strconv.Atoi(m[1]); lvl > *maxLevel {
					*maxLevel = lvl
				}
			}
			if toc.Options.Title == "" && tocClassRe.MatchString(c) &&
				strings.Contains(strings.ToLower(c), "heading") {
				toc.Options.Title = rawText(n)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			scanTOCBlock(c, toc, maxLevel)
		}
	}
}
