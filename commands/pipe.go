package commands

import (
	"io"

	"github.com/barelyhuman/batchpipe/pkg/batchpipe"
	"github.com/barelyhuman/batchpipe/transformers"
	"github.com/urfave/cli/v2"
)

func Pipe(c *cli.Context) (err error) {
	proj, err := loadProject(c)
	if err != nil {
		return err
	}

	plugins, err := proj.loadPlugins()
	if err != nil {
		return err
	}
	defer transformers.CloseAll(plugins)

	input, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return err
	}

	output, err := batchpipe.ProcessBuffer(input, batchpipe.Options{
		Plugins: transformers.Plugins(plugins),
	})
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(output)
	return err
}
