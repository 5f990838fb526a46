package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barelyhuman/batchpipe/pkg/batchpipe"
	"github.com/barelyhuman/go/color"
	"github.com/urfave/cli/v2"
)

func Init(c *cli.Context) (err error) {
	basePath := c.Args().First()
	if basePath == "" {
		basePath = "."
	}
	forceFlag := c.Bool("force")
	logger := batchpipe.NewLogger()
	logger.SetOutput(c.App.Writer)

	configPath := filepath.Join(basePath, batchpipe.DefaultConfigFile)
	if _, err := os.Stat(configPath); err == nil && !forceFlag {
		logger.Error(fmt.Sprintf("Project: %v, already exists, cannot overwrite, if you wish to force overwrite use the -f flag with the `init` command", basePath))
		return cli.Exit("", 1)
	}

	for _, dir := range []string{"input", "plugins"} {
		if err := createDir(basePath, dir); err != nil {
			return err
		}
	}
	if err := writeFile(configPath, starterConfig); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(basePath, "plugins", "example.lua"), starterPlugin); err != nil {
		return err
	}

	logger.Success(
		fmt.Sprintf("batchpipe initialized in: %v", basePath),
	)

	runStr := color.ColorString{}
	fmt.Fprintln(c.App.Writer, runStr.Dim("\n> Drop files into input/ and run").String())

	commandStr := color.ColorString{}
	commandStr.Cyan(
		fmt.Sprintf("\n  cd %v && batchpipe\n", basePath),
	)
	fmt.Fprintln(c.App.Writer, commandStr.String())
	return nil
}

func createDir(root, dir string) error {
	pathToCreate := filepath.Join(root, dir)
	if err := os.MkdirAll(pathToCreate, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %v, with error: %w", pathToCreate, err)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %v, with error: %w", path, err)
	}
	return nil
}

const starterConfig = `# paths or globs, prefix with ! to exclude
input:
  - "input/**/*"
destination: dist
glob: true
# run in order, before everything in plugins_dir
plugins: []
plugins_dir: plugins
`

const starterPlugin = `-- Every plugin defines Transform(content) and returns the new content,
-- or nil and an error message.
local batchpipe = require("batchpipe")

function Transform(content)
  if batchpipe.detect(content) ~= nil then
    -- leave binary formats alone
    return content
  end
  return (content:gsub("[ \t]+\n", "\n"))
end
`
