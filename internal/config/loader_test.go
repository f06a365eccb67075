package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/tagscore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.HitValues["4"], convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TAGSCORE_LOG_LEVEL", "debug")
			_ = os.Setenv("TAGSCORE_METRICS_FILE", "/tmp/tagscore.prom")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/tagscore.prom")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# tournament rules
log_level: warn
hit_values:
  "2": 12
  "5": 20
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TAGSCORE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values merge over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				values, verr := cfg.LocationValues()
				convey.So(verr, convey.ShouldBeNil)
				convey.So(values[1], convey.ShouldEqual, 5)
				convey.So(values[2], convey.ShouldEqual, 12)
				convey.So(values[5], convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile("log_level: warn\nmetrics_file: from-file.prom\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TAGSCORE_CONFIG", tmpFile)
			_ = os.Setenv("TAGSCORE_LOG_LEVEL", "error")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "from-file.prom")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TAGSCORE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("TAGSCORE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the file sets a non-positive hit value", func() {
			tmpFile := createTempConfigFile("hit_values:\n  \"3\": -1\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TAGSCORE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	for _, envVar := range []string{
		"TAGSCORE_CONFIG",
		"TAGSCORE_LOG_LEVEL",
		"TAGSCORE_METRICS_FILE",
	} {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "tagscore-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
