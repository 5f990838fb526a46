package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/barelyhuman/batchpipe/pkg/batchpipe"
	"github.com/barelyhuman/batchpipe/transformers"
	"github.com/barelyhuman/batchpipe/transformers/luascript"
	"github.com/urfave/cli/v2"
)

// project is the config file merged with the flags that override it.
type project struct {
	config   *batchpipe.Config
	basePath string
}

func loadProject(c *cli.Context) (*project, error) {
	path := c.String("config")
	cfg, err := batchpipe.LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(err) || c.IsSet("config") {
			return nil, err
		}
		cfg = &batchpipe.Config{}
	}
	basePath := filepath.Dir(path)
	resolveConfigPaths(cfg, basePath)

	if c.IsSet("plugins-dir") {
		cfg.PluginsDir = c.String("plugins-dir")
	}
	cfg.Plugins = append(cfg.Plugins, c.StringSlice("plugin")...)

	return &project{
		config:   cfg,
		basePath: basePath,
	}, nil
}

// resolveConfigPaths makes relative paths read from the config file relative
// to the file itself. Flag values are merged later and stay relative to the
// working directory.
func resolveConfigPaths(cfg *batchpipe.Config, basePath string) {
	for i, pattern := range cfg.Input {
		if strings.HasPrefix(pattern, "!") {
			cfg.Input[i] = "!" + joinBase(basePath, strings.TrimPrefix(pattern, "!"))
			continue
		}
		cfg.Input[i] = joinBase(basePath, pattern)
	}
	for i, script := range cfg.Plugins {
		cfg.Plugins[i] = joinBase(basePath, script)
	}
	if cfg.PluginsDir != "" {
		cfg.PluginsDir = joinBase(basePath, cfg.PluginsDir)
	}
	if cfg.Destination != "" {
		cfg.Destination = joinBase(basePath, cfg.Destination)
	}
}

func joinBase(basePath, path string) string {
	if basePath == "." || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}

func (p *project) loadPlugins() ([]transformers.Transformer, error) {
	loaded := []transformers.Transformer{}
	for _, script := range p.config.Plugins {
		lt, err := luascript.Load(script, p.basePath)
		if err != nil {
			transformers.CloseAll(loaded)
			return nil, err
		}
		loaded = append(loaded, lt)
	}

	if p.config.PluginsDir == "" {
		return loaded, nil
	}
	fromDir, err := luascript.LoadDir(p.config.PluginsDir, p.basePath)
	if err != nil {
		transformers.CloseAll(loaded)
		return nil, err
	}
	for _, lt := range fromDir {
		loaded = append(loaded, lt)
	}
	return loaded, nil
}
