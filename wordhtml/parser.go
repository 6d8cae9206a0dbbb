package wordhtml

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ericb-bissell/rst-word-addin/caption"
	"github.com/ericb-bissell/rst-word-addin/directive"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// parser carries the state of one Parse call. The image counter lives
// here rather than in a package variable, so concurrent parses never
// share numbering.
type parser struct {
	doc      *model.Document
	opts     Options
	imageSeq int
}

// Parse reads word-processor HTML from r and builds the document model.
// The input is decoded per opts.Charset when set, otherwise per the
// detected encoding. Malformed markup never fails the parse: blocks that
// fit no recognized shape degrade to plain paragraphs. The returned
// element sequence is flat; transform.Apply folds it into its final
// shape.
func Parse(r io.Reader, opts Options) (*model.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("no input reader")
	}
	if opts.DirectiveStylePrefix == "" {
		opts.DirectiveStylePrefix = DefaultOptions().DirectiveStylePrefix
	}

	decoded, charsetName, err := decodedReader(r, opts.Charset)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	root, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	p := &parser{doc: model.NewDocument(), opts: opts}
	p.doc.Meta.Charset = charsetName

	if head := findElement(root, "head"); head != nil {
		p.extractHead(head)
	}
	if body := findElement(root, "body"); body != nil {
		p.walkSequence(elementChildren(body))
	}
	return p.doc, nil
}

// extractHead pulls document metadata: the title, the generator meta tag
// Word stamps its exports with, and any remaining named meta pairs. The
// charset meta is ignored here; encoding was settled before tree parsing.
func (p *parser) extractHead(head *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				p.doc.Meta.Title = rawText(n)
			case "meta":
				name := strings.ToLower(strings.TrimSpace(attrVal(n, "name")))
				content := strings.TrimSpace(attrVal(n, "content"))
				switch {
				case name == "generator":
					p.doc.Meta.Generator = content
				case name != "":
					p.doc.Meta.Attrs[name] = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(head)
}

// walkSequence classifies and parses a sibling run of block nodes. The
// index loop lets a table-of-contents consume several consecutive blocks.
func (p *parser) walkSequence(blocks []*html.Node) {
	for i := 0; i < len(blocks); i++ {
		n := blocks[i]
		switch classify(n, p.opts) {
		case blockSkip:

		case blockTOC:
			toc, consumed := p.parseTOCRun(blocks, i)
			p.doc.AddElement(toc)
			i += consumed - 1

		case blockDirective:
			p.doc.AddElement(p.parseDirective(n))

		case blockHeading:
			p.doc.AddElement(p.parseHeading(n))

		case blockTable:
			if isLayoutTable(n) {
				for _, img := range imageNodes(n) {
					p.doc.AddElement(p.parseImage(img))
				}
			} else {
				p.doc.AddElement(p.buildTable(n))
			}

		case blockList:
			p.doc.AddElement(p.parseSemanticList(n))

		case blockImage:
			for _, e := range p.parseImageBlock(n) {
				p.doc.AddElement(e)
			}

		case blockQuote:
			p.doc.AddElement(p.parseBlockQuote(n))

		case blockListItem:
			p.doc.AddElement(p.parseListParagraph(n))

		case blockContainer:
			p.walkSequence(elementChildren(n))

		default:
			for _, e := range p.parseParagraph(n) {
				p.doc.AddElement(e)
			}
		}
	}
}

type blockKind int

const (
	blockParagraph blockKind = iota
	blockSkip
	blockTOC
	blockDirective
	blockHeading
	blockTable
	blockList
	blockImage
	blockQuote
	blockListItem
	blockContainer
)

// classify assigns a block node to its parse path. The rules run in a
// fixed order and the first match wins; Word blocks frequently satisfy
// several heuristics at once, so the order is part of the contract. A
// TOC entry styled like a paragraph must stay a TOC entry; a directive
// style beats the heading outline level Word leaves on styled blocks; a
// list paragraph carries the indentation that would otherwise read as a
// block quote.
func classify(n *html.Node, opts Options) blockKind {
	if n.Type != html.ElementNode || shouldSkip(n.Data) {
		return blockSkip
	}
	if isTOCBlock(n) {
		return blockTOC
	}
	if directiveStyle(n, opts.DirectiveStylePrefix) != "" {
		return blockDirective
	}
	if headingLevel(n) > 0 {
		return blockHeading
	}
	if n.Data == "table" {
		return blockTable
	}
	if n.Data == "ul" || n.Data == "ol" {
		return blockList
	}
	if isImageBlock(n) {
		return blockImage
	}
	if isBlockQuote(n) {
		return blockQuote
	}
	if isListParagraph(n) {
		return blockListItem
	}
	if isContainer(n) {
		return blockContainer
	}
	return blockParagraph
}

// isImageBlock reports whether the block's meaningful content is images:
// a bare img, an explicit figure holding one, or a container whose text
// is empty or caption-shaped. A text paragraph with an incidental inline
// image is not an image block; the paragraph path extracts its images.
func isImageBlock(n *html.Node) bool {
	imgs := imageNodes(n)
	if len(imgs) == 0 {
		return false
	}
	if n.Data == "img" || n.Data == "figure" {
		return true
	}
	text := rawText(n)
	if text == "" {
		return true
	}
	return caption.Matches(text) || blockCaption(n) != ""
}

// isContainer reports whether the node is a wrapper to recurse into
// rather than a content block of its own. Word wraps each section in a
// WordSection div; only wrappers with block-level children qualify, so a
// leaf div still parses as a paragraph.
func isContainer(n *html.Node) bool {
	switch n.Data {
	case "div", "section", "article", "main", "center", "header", "footer", "aside":
	default:
		return false
	}
	for _, c := range elementChildren(n) {
		switch c.Data {
		case "p", "div", "table", "ul", "ol", "blockquote", "figure", "nav",
			"section", "article", "pre", "h1", "h2", "h3", "h4", "h5", "h6":
			return true
		}
	}
	return false
}

// directiveStyle returns the directive name encoded in the block's class,
// or the empty string when the block is not directive-styled. Word
// title-cases custom style names on export, so the prefix match is
// case-insensitive; the remainder is the directive name, lowercased.
func directiveStyle(n *html.Node, prefix string) string {
	for _, c := range classes(n) {
		if len(c) > len(prefix) && strings.EqualFold(c[:len(prefix)], prefix) {
			return strings.ToLower(c[len(prefix):])
		}
	}
	return ""
}

// parseDirective converts a directive-styled block through the directive
// grammar on the block's flattened text. Field-list styles bypass the
// grammar and produce a FieldList instead.
func (p *parser) parseDirective(n *html.Node) model.Element {
	name := directiveStyle(n, p.opts.DirectiveStylePrefix)
	raw := flatText(n)
	origin := model.Origin{StyleName: styleName(n), Raw: raw}

	switch name {
	case "fields", "field-list", "fieldlist":
		return &model.FieldList{Origin: origin, Fields: directive.ParseFields(raw)}
	}

	d := directive.Parse(name, raw)
	d.Origin = origin
	return d
}

func (p *parser) parseHeading(n *html.Node) model.Element {
	text := rawText(n)
	if text == "" {
		return nil
	}
	h := model.NewHeading(headingLevel(n), text)
	h.Origin = model.Origin{StyleName: styleName(n)}
	return h
}

// parseBlockQuote flattens a quote-shaped block into one block-quote
// paragraph. Multi-paragraph quotes keep their paragraph boundaries as
// hard breaks.
func (p *parser) parseBlockQuote(n *html.Node) model.Element {
	var parts []string
	for _, c := range elementChildren(n) {
		if c.Data != "p" && c.Data != "div" {
			continue
		}
		if t := inlineText(c); t != "" {
			parts = append(parts, t)
		}
	}

	content := strings.Join(parts, "\n")
	if content == "" {
		content = inlineText(n)
	}
	if content == "" {
		return nil
	}

	return &model.Paragraph{
		Origin:       model.Origin{StyleName: styleName(n)},
		Content:      content,
		IsBlockQuote: true,
	}
}

// parseParagraph converts the default block shape. Embedded images are
// extracted as standalone elements first; the remaining inline content
// becomes a Paragraph. Whitespace-only blocks produce nothing.
func (p *parser) parseParagraph(n *html.Node) []model.Element {
	var out []model.Element
	for _, img := range imageNodes(n) {
		out = append(out, p.parseImage(img))
	}
	if text := inlineText(n); text != "" {
		out = append(out, &model.Paragraph{
			Origin:  model.Origin{StyleName: styleName(n)},
			Content: text,
		})
	}
	return out
}
