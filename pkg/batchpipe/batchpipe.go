// Package batchpipe reads files, pushes their bytes through an ordered chain
// of transforms and writes the result back to disk.
//
// A run resolves specifiers (paths or glob patterns) to files, drops OS junk
// such as .DS_Store, then processes every remaining file concurrently. The
// returned results keep the order in which files were resolved.
//
//	results, err := batchpipe.Run([]string{"images/*.png"}, batchpipe.Options{
//		Destination: "dist",
//		Plugins:     []batchpipe.Transform{minify, stripMeta},
//	})
//
// A failing file fails the whole run. Files that other goroutines already
// wrote stay on disk.
package batchpipe

import (
	"github.com/barelyhuman/batchpipe/pkg/glob"
	"github.com/barelyhuman/batchpipe/pkg/junk"
	"github.com/barelyhuman/batchpipe/pkg/sniff"
)

// Transform turns one buffer into another. Transforms are applied in the
// order they are listed.
type Transform func(input []byte) ([]byte, error)

type Options struct {
	// Destination is the directory outputs are written to. When empty each
	// file is rewritten in place.
	Destination string
	Plugins     []Transform
	// NoGlob treats specifiers as already resolved paths.
	NoGlob bool
	// Logger receives debug output, may be nil.
	Logger *Logger
}

// Result describes one processed file. DestinationPath is empty when nothing
// was written.
type Result struct {
	OriginData      []byte
	Data            []byte
	SourcePath      string
	DestinationPath string
}

// Resolver expands specifiers into regular file paths.
type Resolver interface {
	Resolve(patterns []string) ([]string, error)
}

// ArtifactFilter recognises junk file names.
type ArtifactFilter interface {
	IsArtifact(name string) bool
}

// Sniffer reports the canonical extension of the format data starts with.
type Sniffer interface {
	Detect(data []byte) (ext string, ok bool)
}

// Pipeline bundles the collaborators a run depends on. The zero value is not
// usable, use New.
type Pipeline struct {
	Resolver Resolver
	Filter   ArtifactFilter
	Sniffer  Sniffer
	FS       FileSystem
}

func New() *Pipeline {
	return &Pipeline{
		Resolver: glob.Resolver{},
		Filter:   junk.Filter{},
		Sniffer:  sniff.Detector{},
		FS:       OSFileSystem{},
	}
}

var std = New()

// Run processes every file the specifiers resolve to using the default
// pipeline.
func Run(specifiers []string, opts Options) ([]*Result, error) {
	return std.Run(specifiers, opts)
}

// ProcessFile processes a single file using the default pipeline.
func ProcessFile(sourcePath string, opts Options) (*Result, error) {
	return std.ProcessFile(sourcePath, opts)
}

// ProcessBuffer runs opts.Plugins over input without touching the disk.
func ProcessBuffer(input []byte, opts Options) ([]byte, error) {
	return std.ProcessBuffer(input, opts)
}
