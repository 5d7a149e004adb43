package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"school-directory/config"
	"school-directory/controllers"
	"school-directory/driver"
	"school-directory/storage"
	"school-directory/store"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := driver.ConnectDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := driver.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	schoolStore := store.NewSchoolStore(db)
	blobStore := storage.NewBlobStore(cfg.UploadDir, log)

	router := controllers.NewRouter(schoolStore, blobStore, log)

	log.WithFields(logrus.Fields{"port": cfg.Port, "db": cfg.DBPath}).Info("server started")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
