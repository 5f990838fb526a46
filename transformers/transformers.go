package transformers

import "github.com/barelyhuman/batchpipe/pkg/batchpipe"

// Transformer is a loadable plugin. Implementations must be safe to call from
// several goroutines since files are processed concurrently.
type Transformer interface {
	Name() string
	Transform(input []byte) ([]byte, error)
	Close()
}

// Plugins adapts transformers into pipeline plugins, keeping their order.
func Plugins(ts []Transformer) []batchpipe.Transform {
	plugins := make([]batchpipe.Transform, 0, len(ts))
	for _, t := range ts {
		plugins = append(plugins, t.Transform)
	}
	return plugins
}

func CloseAll(ts []Transformer) {
	for _, t := range ts {
		t.Close()
	}
}
