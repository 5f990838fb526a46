package batchpipe

import (
	"path/filepath"
	"strings"
)

const webpExt = "webp"

// ProcessFile reads sourcePath, runs it through opts.Plugins and writes the
// output. The output goes to opts.Destination joined with the source's base
// name, or over the source itself when no destination is set. Outputs sniffed
// as WebP always get a .webp extension.
func (p *Pipeline) ProcessFile(sourcePath string, opts Options) (*Result, error) {
	if err := validatePlugins(opts.Plugins); err != nil {
		return nil, err
	}

	originData, err := p.FS.ReadFile(sourcePath)
	if err != nil {
		return nil, &FileError{Op: "read", Source: sourcePath, Err: err}
	}

	data, err := Chain(opts.Plugins...)(originData)
	if err != nil {
		return nil, err
	}

	result := &Result{
		OriginData:      originData,
		Data:            data,
		SourcePath:      sourcePath,
		DestinationPath: p.destinationPath(sourcePath, opts.Destination, data),
	}

	if result.DestinationPath == "" {
		return result, nil
	}

	if err := p.FS.MkdirAll(filepath.Dir(result.DestinationPath)); err != nil {
		return nil, &FileError{Op: "mkdir", Source: sourcePath, Err: err}
	}
	if err := p.FS.WriteFile(result.DestinationPath, result.Data); err != nil {
		return nil, &FileError{Op: "write", Source: sourcePath, Err: err}
	}

	opts.Logger.Debug("wrote " + result.DestinationPath)
	return result, nil
}

func (p *Pipeline) destinationPath(sourcePath, destination string, data []byte) string {
	dest := sourcePath
	if destination != "" {
		dest = filepath.Join(destination, filepath.Base(sourcePath))
	}
	if ext, ok := p.Sniffer.Detect(data); ok && ext == webpExt {
		dest = replaceExt(dest, "."+webpExt)
	}
	return dest
}

// replaceExt swaps the extension of path for ext. Dotfiles such as .env have
// no extension, so ext is appended to them.
func replaceExt(path, ext string) string {
	if path == "" {
		return path
	}
	current := filepath.Ext(path)
	if current == filepath.Base(path) {
		current = ""
	}
	return strings.TrimSuffix(path, current) + ext
}
