package batchpipe

import (
	"fmt"
	"path/filepath"
	"strings"
)

type outcome struct {
	index  int
	result *Result
	err    error
}

// Run resolves specifiers, skips junk files and processes the rest
// concurrently. Results come back in resolution order.
//
// The first failure to come in is returned as a *RunError without waiting
// for the remaining files. Those keep running to completion and whatever
// they write stays on disk.
func (p *Pipeline) Run(specifiers []string, opts Options) ([]*Result, error) {
	if specifiers == nil {
		return nil, &ConfigError{Option: "specifiers", Want: "a list", Got: "nil"}
	}
	if err := validatePlugins(opts.Plugins); err != nil {
		return nil, err
	}

	paths := specifiers
	if !opts.NoGlob {
		var err error
		paths, err = p.Resolver.Resolve(specifiers)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %v, with error: %w", strings.Join(specifiers, ","), err)
		}
	}

	filtered := make([]string, 0, len(paths))
	for _, path := range paths {
		if p.Filter.IsArtifact(filepath.Base(path)) {
			opts.Logger.Debug("skipping " + path)
			continue
		}
		filtered = append(filtered, path)
	}

	// buffered so late finishers never block once Run has returned
	outcomes := make(chan outcome, len(filtered))
	for i, path := range filtered {
		go func(i int, path string) {
			result, err := p.ProcessFile(path, opts)
			outcomes <- outcome{index: i, result: result, err: err}
		}(i, path)
	}

	results := make([]*Result, len(filtered))
	for range filtered {
		o := <-outcomes
		if o.err != nil {
			return nil, &RunError{Specifiers: specifiers, Err: o.err}
		}
		results[o.index] = o.result
	}
	return results, nil
}
