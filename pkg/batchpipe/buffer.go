package batchpipe

// ProcessBuffer applies opts.Plugins to input. Only Plugins is consulted;
// nothing is read from or written to disk.
func (p *Pipeline) ProcessBuffer(input []byte, opts Options) ([]byte, error) {
	if input == nil {
		return nil, &ConfigError{Option: "input", Want: "a byte buffer", Got: "nil"}
	}
	if err := validatePlugins(opts.Plugins); err != nil {
		return nil, err
	}
	if len(opts.Plugins) == 0 {
		return input, nil
	}
	return Chain(opts.Plugins...)(input)
}
