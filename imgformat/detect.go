// Package imgformat provides image format detection for embedded document images.
package imgformat

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported image format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a Portable Network Graphics image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// BMP indicates a Windows bitmap image.
	BMP
	// TIFF indicates a Tagged Image File Format image.
	TIFF
	// WEBP indicates a WebP image.
	WEBP
	// SVG indicates a Scalable Vector Graphics document.
	SVG
	// EMF indicates a Windows Enhanced Metafile.
	EMF
	// WMF indicates a Windows Metafile.
	WMF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case WEBP:
		return "WEBP"
	case SVG:
		return "SVG"
	case EMF:
		return "EMF"
	case WMF:
		return "WMF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	case WEBP:
		return ".webp"
	case SVG:
		return ".svg"
	case EMF:
		return ".emf"
	case WMF:
		return ".wmf"
	default:
		return ""
	}
}

// MIME returns the MIME type for the format.
func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	case WEBP:
		return "image/webp"
	case SVG:
		return "image/svg+xml"
	case EMF:
		return "image/x-emf"
	case WMF:
		return "image/x-wmf"
	default:
		return "application/octet-stream"
	}
}

// Detect determines image format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg", ".jfif":
		return JPEG
	case ".gif":
		return GIF
	case ".bmp", ".dib":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	case ".webp":
		return WEBP
	case ".svg":
		return SVG
	case ".emf":
		return EMF
	case ".wmf":
		return WMF
	default:
		return Unknown
	}
}

// DetectFromMagic checks magic bytes to determine image format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PNG magic: \x89PNG
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		return PNG
	}

	// JPEG magic: \xFF\xD8\xFF
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return JPEG
	}

	// GIF magic: GIF87a or GIF89a
	if bytes.HasPrefix(data, []byte("GIF8")) {
		return GIF
	}

	// BMP magic: BM
	if bytes.HasPrefix(data, []byte("BM")) {
		return BMP
	}

	// TIFF magic: II*\x00 (little-endian) or MM\x00* (big-endian)
	if bytes.HasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}) ||
		bytes.HasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}) {
		return TIFF
	}

	// WEBP is a RIFF container with a WEBP chunk type
	if len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP")) {
		return WEBP
	}

	// Placeable WMF magic, then the bare WMF header
	if bytes.HasPrefix(data, []byte{0xD7, 0xCD, 0xC6, 0x9A}) ||
		bytes.HasPrefix(data, []byte{0x01, 0x00, 0x09, 0x00}) {
		return WMF
	}

	// EMF: record type 1 at offset 0, " EMF" signature at offset 40
	if len(data) >= 44 && bytes.HasPrefix(data, []byte{0x01, 0x00, 0x00, 0x00}) &&
		bytes.Equal(data[40:44], []byte{0x20, 'E', 'M', 'F'}) {
		return EMF
	}

	// SVG is XML text; sniff the opening tag
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<svg")) ||
		(bytes.HasPrefix(trimmed, []byte("<?xml")) && bytes.Contains(head, []byte("<svg"))) {
		return SVG
	}

	return Unknown
}

// DetectFromMIME maps a MIME type (as found in data: URIs or content-type
// attributes) to a Format. Parameters after a semicolon are ignored.
func DetectFromMIME(mime string) Format {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	switch mime {
	case "image/png", "image/x-png":
		return PNG
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return JPEG
	case "image/gif":
		return GIF
	case "image/bmp", "image/x-ms-bmp":
		return BMP
	case "image/tiff":
		return TIFF
	case "image/webp":
		return WEBP
	case "image/svg+xml":
		return SVG
	case "image/x-emf", "image/emf":
		return EMF
	case "image/x-wmf", "image/wmf":
		return WMF
	default:
		return Unknown
	}
}
