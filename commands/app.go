package commands

import (
	"github.com/barelyhuman/batchpipe/pkg/batchpipe"
	"github.com/urfave/cli/v2"
)

func pluginFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "plugin",
			Aliases: []string{"p"},
			Usage:   "Lua `FILE` defining Transform(content), repeat to chain in order",
		},
		&cli.StringFlag{
			Name:  "plugins-dir",
			Usage: "`DIR` whose .lua files run after --plugin ones, sorted by name",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   batchpipe.DefaultConfigFile,
			Usage:   "project config `FILE`",
		},
	}
}

func NewApp() *cli.App {
	runFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "`DIR` to write processed files to, files are rewritten in place when unset",
		},
		&cli.BoolFlag{
			Name:  "no-glob",
			Usage: "treat arguments as plain paths",
		},
		&cli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "re-run when inputs change",
		},
		&cli.IntFlag{
			Name:  "poll",
			Value: 2000,
			Usage: "watch poll interval in milliseconds",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "print debug output",
		},
	}

	return &cli.App{
		Name:      "batchpipe",
		Usage:     "Push files through a chain of plugins and write them out",
		ArgsUsage: "<path or glob>...",
		Flags:     append(runFlags, pluginFlags()...),
		Action:    Run,
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "scaffold a batchpipe project",
				ArgsUsage: "[dir]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "write into an existing directory",
					},
				},
				Action: Init,
			},
			{
				Name:   "pipe",
				Usage:  "run plugins over stdin and write the result to stdout",
				Flags:  pluginFlags(),
				Action: Pipe,
			},
		},
	}
}
