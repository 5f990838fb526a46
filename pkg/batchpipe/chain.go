package batchpipe

import "fmt"

func identity(input []byte) ([]byte, error) {
	return input, nil
}

// Chain composes transforms into one that feeds each stage's output into the
// next. The first failing stage stops the chain and its error is returned
// as is. An empty chain returns its input untouched.
func Chain(transforms ...Transform) Transform {
	if len(transforms) == 0 {
		return identity
	}
	stages := append([]Transform(nil), transforms...)
	return func(input []byte) ([]byte, error) {
		data := input
		for _, stage := range stages {
			var err error
			data, err = stage(data)
			if err != nil {
				return nil, err
			}
		}
		return data, nil
	}
}

func validatePlugins(plugins []Transform) error {
	for i, p := range plugins {
		if p == nil {
			return &ConfigError{
				Option: "plugins",
				Want:   "a list of transforms",
				Got:    fmt.Sprintf("nil at index %d", i),
			}
		}
	}
	return nil
}
