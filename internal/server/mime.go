package server

import "strings"

// Mime is the small set of content types the static file surface serves.
type Mime int

const (
	MimeHTML Mime = iota
	MimeCSS
	MimeJS
	MimeWasm
)

func (m Mime) String() string {
	switch m {
	case MimeHTML:
		return "text/html; charset=utf-8"
	case MimeCSS:
		return "text/css; charset=utf-8"
	case MimeJS:
		return "text/javascript; charset=utf-8"
	case MimeWasm:
		return "application/wasm"
	default:
		return "application/octet-stream"
	}
}

// mimeForPath maps a request path to a Mime by extension.
func mimeForPath(path string) (Mime, bool) {
	switch {
	case path == "/", strings.HasSuffix(path, ".html"), strings.HasSuffix(path, ".htm"):
		return MimeHTML, true
	case strings.HasSuffix(path, ".css"):
		return MimeCSS, true
	case strings.HasSuffix(path, ".js"):
		return MimeJS, true
	case strings.HasSuffix(path, ".wasm"):
		return MimeWasm, true
	default:
		return 0, false
	}
}
