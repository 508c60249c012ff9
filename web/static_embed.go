package web

import _ "embed"

//go:embed index.html
var indexHTML []byte

// IndexHTML returns the storefront page shipped with the binary.
func IndexHTML() []byte {
	out := make([]byte, len(indexHTML))
	copy(out, indexHTML)
	return out
}
