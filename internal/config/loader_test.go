package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/campuslens/campuslens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.DataDir, convey.ShouldEqual, "data")
				convey.So(cfg.PostgresDSN, convey.ShouldBeEmpty)
				convey.So(cfg.TopN, convey.ShouldEqual, 5)
				convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 50)
				convey.So(cfg.RateLimitBurst, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAMPUSLENS_ADDR", ":9090")
			_ = os.Setenv("CAMPUSLENS_DATA_DIR", "/srv/datasets")
			_ = os.Setenv("CAMPUSLENS_TOP_N", "10")
			_ = os.Setenv("CAMPUSLENS_RATE_LIMIT_RPS", "25")
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/srv/datasets")
				convey.So(cfg.TopN, convey.ShouldEqual, 10)
				convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 25)
				convey.So(cfg.RateLimitBurst, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			content := "addr: \":7070\"\nlog_level: debug\ntop_n: 3\n"
			convey.So(os.WriteFile(path, []byte(content), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("CAMPUSLENS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.TopN, convey.ShouldEqual, 3)
				convey.So(cfg.DataDir, convey.ShouldEqual, "data")
			})
		})

		convey.Convey("When env vars and file disagree", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("CAMPUSLENS_CONFIG", path)
			_ = os.Setenv("CAMPUSLENS_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load()

			convey.Convey("Then env vars win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CAMPUSLENS_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load()

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When top_n is not positive", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CAMPUSLENS_TOP_N", "0")
			defer clearConfigEnvVars()

			_, err := config.Load()

			convey.Convey("Then validation fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When both data_dir and postgres_dsn are empty", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CAMPUSLENS_DATA_DIR", "")
			defer clearConfigEnvVars()

			_, err := config.Load()

			convey.Convey("Then validation fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"CAMPUSLENS_CONFIG",
		"CAMPUSLENS_ADDR",
		"CAMPUSLENS_LOG_LEVEL",
		"CAMPUSLENS_DATA_DIR",
		"CAMPUSLENS_POSTGRES_DSN",
		"CAMPUSLENS_TOP_N",
		"CAMPUSLENS_RATE_LIMIT_RPS",
		"CAMPUSLENS_RATE_LIMIT_BURST",
	} {
		_ = os.Unsetenv(key)
	}
}
