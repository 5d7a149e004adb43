package config

import "os"

// Config holds the environment-driven settings. APP_ENV=production switches the
// database to a /tmp path for deployments with a read-only working directory.
type Config struct {
	Port      string
	Env       string
	DBPath    string
	UploadDir string
}

func Load() *Config {
	env := getEnv("APP_ENV", "development")

	dbPath := "./school_management.db"
	if env == "production" {
		dbPath = "/tmp/school_management.db"
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		Env:       env,
		DBPath:    getEnv("SCHOOL_DB_PATH", dbPath),
		UploadDir: getEnv("UPLOAD_DIR", "./public/schoolImages"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
