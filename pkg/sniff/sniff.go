// Package sniff identifies binary formats by their leading bytes.
package sniff

import (
	"github.com/h2non/filetype"
)

// Detector is the default format sniffer used by the pipeline.
type Detector struct{}

func (Detector) Detect(data []byte) (string, bool) {
	return Detect(data)
}

// Detect returns the canonical extension (without the dot) of the format
// data starts with. ok is false when nothing is recognised.
func Detect(data []byte) (ext string, ok bool) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}
	return kind.Extension, true
}
