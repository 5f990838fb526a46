package commands

import (
	"fmt"
	"strings"

	"github.com/barelyhuman/batchpipe/pkg/batchpipe"
	"github.com/barelyhuman/batchpipe/pkg/glob"
	"github.com/barelyhuman/batchpipe/transformers"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func Run(c *cli.Context) (err error) {
	logger := batchpipe.NewLogger()
	logger.SetOutput(c.App.Writer)
	logger.EnableDebug(c.Bool("debug"))

	proj, err := loadProject(c)
	if err != nil {
		return err
	}
	cfg := proj.config

	specifiers := c.Args().Slice()
	if len(specifiers) == 0 {
		specifiers = cfg.Input
	}
	if len(specifiers) == 0 {
		return cli.Exit(fmt.Sprintf("no input given, pass paths or set `input` in %v", batchpipe.DefaultConfigFile), 1)
	}

	destination := cfg.Destination
	if c.IsSet("out") {
		destination = c.String("out")
	}

	watch := c.Bool("watch")
	if watch && destination == "" {
		return cli.Exit("--watch needs an output directory, in-place rewrites would trigger themselves", 1)
	}

	plugins, err := proj.loadPlugins()
	if err != nil {
		return err
	}
	defer transformers.CloseAll(plugins)

	opts := batchpipe.Options{
		Destination: destination,
		Plugins:     transformers.Plugins(plugins),
		NoGlob:      cfg.NoGlob || c.Bool("no-glob"),
		Logger:      logger,
	}

	if !watch {
		return runOnce(specifiers, opts, logger)
	}

	specifiers = watchSpecifiers(specifiers, destination, opts.NoGlob)
	err = runOnce(specifiers, opts, logger)
	if err != nil {
		logger.Error(err.Error())
	}

	watcher := batchpipe.NewWatcher(logger, c.Int("poll"))
	watched := map[string]bool{}
	for _, s := range specifiers {
		dir := glob.Base(s)
		if strings.HasPrefix(s, "!") || watched[dir] {
			continue
		}
		watched[dir] = true
		watcher.AddDir(dir)
	}
	watcher.Ignore(destination)
	watcher.Start()
	logger.Info("Watching for changes")

	for changed := range watcher.Changes() {
		logger.Info(fmt.Sprintf("Changed: %v", changed))
		if err := runOnce(specifiers, opts, logger); err != nil {
			logger.Error(err.Error())
		}
	}
	return nil
}

// watchSpecifiers keeps the output directory out of the inputs, otherwise a
// destination inside a watched tree feeds every run's outputs into the next.
func watchSpecifiers(specifiers []string, destination string, noGlob bool) []string {
	if noGlob {
		return specifiers
	}
	return glob.Exclude(specifiers, destination)
}

func runOnce(specifiers []string, opts batchpipe.Options, logger *batchpipe.Logger) error {
	results, err := batchpipe.Run(specifiers, opts)
	if err != nil {
		return err
	}

	var before, after int
	for _, r := range results {
		before += len(r.OriginData)
		after += len(r.Data)
		target := r.DestinationPath
		if target == "" {
			target = "(not written)"
		}
		logger.Info(fmt.Sprintf("%v → %v %v", r.SourcePath, target, sizeChange(len(r.OriginData), len(r.Data))))
	}

	logger.Success(fmt.Sprintf("Processed %d files %v", len(results), sizeChange(before, after)))
	return nil
}

func sizeChange(before, after int) string {
	change := fmt.Sprintf("(%v → %v", humanize.Bytes(uint64(before)), humanize.Bytes(uint64(after)))
	if before > 0 && after != before {
		change += fmt.Sprintf(", %+.1f%%", float64(after-before)/float64(before)*100)
	}
	return change + ")"
}
