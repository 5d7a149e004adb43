package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"school-directory/storage"
	"school-directory/store"
)

// NewRouter wires every endpoint. /schools/view is registered before the
// /schools/{id} routes so "view" is never parsed as an id.
func NewRouter(st *store.SchoolStore, blobs *storage.BlobStore, log *logrus.Logger) *mux.Router {
	schoolController := SchoolController{Log: log}

	router := mux.NewRouter()
	router.HandleFunc("/schools", schoolController.GetSchools(st)).Methods("GET")
	router.HandleFunc("/schools", schoolController.CreateSchool(st, blobs)).Methods("POST")
	router.HandleFunc("/schools/view", schoolController.GetSchoolsView(st)).Methods("GET")
	router.HandleFunc("/schools/{id}", schoolController.GetSchool(st)).Methods("GET")
	router.HandleFunc("/schools/{id}", schoolController.DeleteSchool(st, blobs)).Methods("DELETE")

	router.PathPrefix(storage.URLPrefix + "/").Handler(
		http.StripPrefix(storage.URLPrefix+"/", http.FileServer(http.Dir(blobs.Dir()))))

	return router
}
