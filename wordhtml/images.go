package wordhtml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/net/html"

	"github.com/ericb-bissell/rst-word-addin/caption"
	"github.com/ericb-bissell/rst-word-addin/imgformat"
	"github.com/ericb-bissell/rst-word-addin/model"
)

// imageNodes returns every img descendant of n in document order.
func imageNodes(n *html.Node) []*html.Node {
	var imgs []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if node.Data == "img" {
				imgs = append(imgs, node)
				return
			}
			if shouldSkip(node.Data) {
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return imgs
}

// parseImageBlock converts a block whose meaningful content is images. A
// figure-like container holding a single image becomes a Figure, absorbing
// a caption found inside the same block; every other shape emits one Image
// element per embedded image.
func (p *parser) parseImageBlock(n *html.Node) []model.Element {
	imgs := imageNodes(n)
	if len(imgs) == 0 {
		return nil
	}

	if len(imgs) == 1 && (isLikelyFigure(n) || blockCaption(n) != "") {
		return []model.Element{p.buildFigure(n, imgs[0])}
	}

	elements := make([]model.Element, 0, len(imgs))
	for _, img := range imgs {
		elements = append(elements, p.parseImage(img))
	}
	return elements
}

// isLikelyFigure reports whether a container is figure-like: an explicit
// figure element, a centered block, or a class that names a figure or
// image container.
func isLikelyFigure(n *html.Node) bool {
	if n.Data == "figure" {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(attrVal(n, "align")), "center") {
		return true
	}
	if strings.EqualFold(strings.TrimSpace(styleVal(n, "text-align")), "center") {
		return true
	}
	class := strings.ToLower(attrVal(n, "class"))
	return strings.Contains(class, "figure") || strings.Contains(class, "image")
}

// buildFigure wraps the block's single image as a Figure, pulling the
// caption from a figcaption child or a caption-styled sibling paragraph
// inside the same block.
func (p *parser) buildFigure(container, img *html.Node) *model.Figure {
	im := p.parseImage(img)
	fig := &model.Figure{
		Origin:  model.Origin{StyleName: styleName(container)},
		Options: im.Options,
		Ref:     im.Ref,
	}

	if text := blockCaption(container); text != "" {
		if c, ok := caption.Parse(text); ok && c.Kind == caption.Figure {
			fig.Caption = c.Text
			fig.FigureNumber = c.Number
			fig.FigName = c.RefName()
		} else {
			fig.Caption = text
		}
	}
	return fig
}

// blockCaption finds caption text inside a figure block: an explicit
// figcaption wins, else a caption-styled or caption-shaped paragraph that
// shares the container with the image.
func blockCaption(n *html.Node) string {
	if fc := findElement(n, "figcaption"); fc != nil {
		return rawText(fc)
	}
	for _, c := range elementChildren(n) {
		if c.Data != "p" && c.Data != "div" {
			continue
		}
		if len(imageNodes(c)) > 0 {
			continue
		}
		text := rawText(c)
		if text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(attrVal(c, "class")), "caption") || caption.Matches(text) {
			return text
		}
	}
	// caption text written directly in the image's own block
	if text := rawText(n); text != "" && caption.Matches(text) {
		return text
	}
	return ""
}

// parseImage builds an Image element and registers its payload reference on
// the document.
func (p *parser) parseImage(img *html.Node) *model.Image {
	ref := p.newImageRef(img)

	opts := model.ImageOptions{
		Alt:    strings.TrimSpace(attrVal(img, "alt")),
		Width:  imageDimension(img, "width"),
		Height: imageDimension(img, "height"),
		Align:  imageAlign(img),
	}
	if opts.Width == "" && ref.Width > 0 {
		opts.Width = fmt.Sprintf("%dpx", ref.Width)
	}
	if opts.Height == "" && ref.Height > 0 {
		opts.Height = fmt.Sprintf("%dpx", ref.Height)
	}

	if ref.Base64Data != "" {
		opts.URI = "images/" + ref.Filename
	} else {
		opts.URI = strings.TrimSpace(attrVal(img, "src"))
	}

	return &model.Image{
		Origin:  model.Origin{StyleName: styleName(img)},
		Options: opts,
		Ref:     ref,
	}
}

// newImageRef assigns the next image ID and extracts the payload. Inline
// data: URIs are decoded and probed for format and pixel dimensions; any
// other source is left for the host to resolve, with a warning and an
// empty payload.
func (p *parser) newImageRef(img *html.Node) *model.ImageRef {
	p.imageSeq++
	ref := &model.ImageRef{ID: p.imageSeq}

	src := strings.TrimSpace(attrVal(img, "src"))
	switch {
	case src == "":
		p.doc.Warnf("image %d has no source; payload left empty", ref.ID)

	case strings.HasPrefix(strings.ToLower(src), "data:"):
		mime, payload, err := parseDataURI(src)
		if err != nil {
			p.doc.Warnf("image %d: %v; payload left empty", ref.ID, err)
			break
		}
		ref.Format = imgformat.DetectFromMagic(payload)
		if ref.Format == imgformat.Unknown {
			ref.Format = imgformat.DetectFromMIME(mime)
		}
		ref.Base64Data = base64.StdEncoding.EncodeToString(payload)
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(payload)); err == nil {
			ref.Width, ref.Height = cfg.Width, cfg.Height
		}

	default:
		ref.Format = imgformat.Detect(src)
		p.doc.Warnf("image %d references external source %q; payload not embedded", ref.ID, src)
	}

	ext := ref.Format.Extension()
	if ext == "" {
		ext = ".png"
	}
	ref.Filename = fmt.Sprintf("image%d%s", ref.ID, ext)

	p.doc.AddImage(ref)
	return ref
}

// parseDataURI splits a data: URI into its MIME type and decoded payload.
// Base64 payloads may carry stray whitespace from line wrapping; plain
// payloads are percent-decoded.
func parseDataURI(src string) (string, []byte, error) {
	comma := strings.IndexByte(src, ',')
	if comma < 0 {
		return "", nil, fmt.Errorf("malformed data URI: missing comma separator")
	}

	meta := src[len("data:"):comma]
	data := src[comma+1:]

	if b64 := ";base64"; strings.HasSuffix(strings.ToLower(meta), b64) {
		meta = meta[:len(meta)-len(b64)]
		payload, err := base64.StdEncoding.DecodeString(stripSpace(data))
		if err != nil {
			return "", nil, fmt.Errorf("malformed data URI: %w", err)
		}
		return meta, payload, nil
	}

	decoded, err := url.PathUnescape(data)
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URI: %w", err)
	}
	return meta, []byte(decoded), nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// imageDimension reads a width or height from the attribute, then from a
// style declaration. Bare numbers are pixel counts.
func imageDimension(img *html.Node, name string) string {
	v := strings.TrimSpace(attrVal(img, name))
	if v == "" {
		v = strings.TrimSpace(styleVal(img, name))
	}
	if v == "" {
		return ""
	}
	if _, err := strconv.Atoi(v); err == nil {
		return v + "px"
	}
	return v
}

// imageAlign reads horizontal alignment from the align attribute or a
// float declaration.
func imageAlign(img *html.Node) string {
	v := strings.ToLower(strings.TrimSpace(attrVal(img, "align")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(styleVal(img, "float")))
	}
	switch v {
	case "left", "center", "right":
		return v
	}
	return ""
}
