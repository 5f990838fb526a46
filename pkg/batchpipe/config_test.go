package batchpipe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseConfig(t *testing.T) {
	Convey("ParseConfig", t, func() {
		Convey("reads every field", func() {
			cfg, err := ParseConfig([]byte(`
input:
  - "images/**/*.png"
  - "!images/vendor/**"
destination: dist
glob: false
plugins:
  - plugins/strip.lua
plugins_dir: plugins
`))
			So(err, ShouldBeNil)
			So(cfg.Input, ShouldResemble, []string{"images/**/*.png", "!images/vendor/**"})
			So(cfg.Destination, ShouldEqual, "dist")
			So(cfg.NoGlob, ShouldBeTrue)
			So(cfg.Plugins, ShouldResemble, []string{"plugins/strip.lua"})
			So(cfg.PluginsDir, ShouldEqual, "plugins")
		})

		Convey("globs by default", func() {
			cfg, err := ParseConfig([]byte("input: [a.png]\n"))
			So(err, ShouldBeNil)
			So(cfg.NoGlob, ShouldBeFalse)
			So(cfg.Plugins, ShouldBeNil)
		})

		Convey("treats null plugins as absent", func() {
			cfg, err := ParseConfig([]byte("plugins:\n"))
			So(err, ShouldBeNil)
			So(cfg.Plugins, ShouldBeNil)
		})

		Convey("rejects plugins that are not a list", func() {
			_, err := ParseConfig([]byte("plugins: plugins/strip.lua\n"))
			var cfgErr *ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Option, ShouldEqual, "plugins")
			So(cfgErr.Got, ShouldEqual, "string")
			So(err.Error(), ShouldEqual, "the `plugins` option should be a list, got string")
		})

		Convey("rejects input that is a map", func() {
			_, err := ParseConfig([]byte("input:\n  a: b\n"))
			var cfgErr *ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Option, ShouldEqual, "input")
			So(cfgErr.Got, ShouldEqual, "map")
		})

		Convey("reports the kind of a numeric plugins value", func() {
			_, err := ParseConfig([]byte("plugins: 3\n"))
			var cfgErr *ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Got, ShouldEqual, "int")
		})
	})
}

func TestLoadConfig(t *testing.T) {
	Convey("LoadConfig", t, func() {
		dir := t.TempDir()

		Convey("loads a file from disk", func() {
			path := filepath.Join(dir, DefaultConfigFile)
			So(os.WriteFile(path, []byte("destination: out\n"), 0o644), ShouldBeNil)
			cfg, err := LoadConfig(path)
			So(err, ShouldBeNil)
			So(cfg.Destination, ShouldEqual, "out")
		})

		Convey("names the file on parse errors", func() {
			path := filepath.Join(dir, "bad.yml")
			So(os.WriteFile(path, []byte("plugins: nope\n"), 0o644), ShouldBeNil)
			_, err := LoadConfig(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, path)
			var cfgErr *ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
		})

		Convey("surfaces a missing file", func() {
			_, err := LoadConfig(filepath.Join(dir, "missing.yml"))
			So(os.IsNotExist(err), ShouldBeTrue)
		})
	})
}
