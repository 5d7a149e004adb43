package config_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"school-directory/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)

	cfg := config.Load()

	c.Assert(cfg.Port, qt.Equals, "8000")
	c.Assert(cfg.Env, qt.Equals, "development")
	c.Assert(cfg.DBPath, qt.Equals, "./school_management.db")
	c.Assert(cfg.UploadDir, qt.Equals, "./public/schoolImages")
}

func TestLoadProductionDBPath(t *testing.T) {
	c := qt.New(t)
	t.Setenv("APP_ENV", "production")

	cfg := config.Load()

	c.Assert(cfg.Env, qt.Equals, "production")
	c.Assert(cfg.DBPath, qt.Equals, "/tmp/school_management.db")
}

func TestLoadOverrides(t *testing.T) {
	c := qt.New(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SCHOOL_DB_PATH", "/data/schools.db")
	t.Setenv("UPLOAD_DIR", "/data/images")

	cfg := config.Load()

	c.Assert(cfg.Port, qt.Equals, "9090")
	c.Assert(cfg.DBPath, qt.Equals, "/data/schools.db")
	c.Assert(cfg.UploadDir, qt.Equals, "/data/images")
}
