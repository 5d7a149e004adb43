package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"school-directory/listing"
	"school-directory/models"
	"school-directory/storage"
	"school-directory/store"
	"school-directory/utils"
)

const maxUploadSize = 10 << 20 // 10MB

type SchoolController struct {
	Log *logrus.Logger
}

// GetSchools returns every school, newest first.
func (sc SchoolController) GetSchools(st *store.SchoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schools, err := st.ListAll()
		if err != nil {
			sc.Log.WithError(err).Error("failed to fetch schools")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch schools"})
			return
		}
		utils.ResponseJSON(w, http.StatusOK, schools)
	}
}

// GetSchool returns a single school by id.
func (sc SchoolController) GetSchool(st *store.SchoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid school ID"})
			return
		}

		school, err := st.GetByID(id)
		if errors.Is(err, store.ErrSchoolNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "School not found"})
			return
		}
		if err != nil {
			sc.Log.WithError(err).WithField("id", id).Error("failed to fetch school")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch school"})
			return
		}
		utils.ResponseJSON(w, http.StatusOK, school)
	}
}

// GetSchoolsView projects the full record set through the listing query taken
// from the URL: search, city, sort, page, view.
func (sc SchoolController) GetSchoolsView(st *store.SchoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		q := listing.NewQuery()
		q.Search = params.Get("search")
		q.City = params.Get("city")
		if v := params.Get("sort"); v != "" {
			q.Sort = listing.SortKey(v)
		}
		if v := params.Get("view"); v != "" {
			q.View = listing.ViewMode(v)
		}
		if page, err := strconv.Atoi(params.Get("page")); err == nil && page > 0 {
			q.Page = page
		}

		schools, err := st.ListAll()
		if err != nil {
			sc.Log.WithError(err).Error("failed to fetch schools")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch schools"})
			return
		}
		utils.ResponseJSON(w, http.StatusOK, listing.Project(schools, q))
	}
}

// CreateSchool ingests a multipart submission: required fields first, then
// email and contact formats, then the image write and the row insert.
func (sc SchoolController) CreateSchool(st *store.SchoolStore, blobs *storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid form data"})
			return
		}

		school := models.School{
			Name:             r.FormValue("name"),
			Address:          r.FormValue("address"),
			City:             r.FormValue("city"),
			State:            r.FormValue("state"),
			Contact:          r.FormValue("contact"),
			EmailID:          r.FormValue("email_id"),
			About:            r.FormValue("about"),
			AcademicPrograms: r.FormValue("academic_programs"),
			Facilities:       r.FormValue("facilities"),
			Website:          r.FormValue("website"),
			EstablishedYear:  r.FormValue("established_year"),
			PrincipalName:    r.FormValue("principal_name"),
			TotalStudents:    r.FormValue("total_students"),
			BoardAffiliation: r.FormValue("board_affiliation"),
		}

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
		}
		if err != nil || school.Name == "" || school.Address == "" || school.City == "" ||
			school.State == "" || school.Contact == "" || school.EmailID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "All fields are required"})
			return
		}

		if !utils.IsValidEmail(school.EmailID) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid email format"})
			return
		}
		if !utils.IsContactNumber(school.Contact) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Contact number must be exactly 10 digits"})
			return
		}

		imagePath, err := blobs.Save(file, header.Filename)
		if err != nil {
			sc.Log.WithError(err).Error("failed to save image")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to save image"})
			return
		}
		school.Image = imagePath

		// If the insert fails the stored image is left behind; there is no
		// compensating delete.
		id, err := st.Insert(&school)
		if err != nil {
			sc.Log.WithError(err).Error("failed to add school")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to add school"})
			return
		}

		sc.Log.WithFields(logrus.Fields{"id": id, "name": school.Name}).Info("school added")
		utils.ResponseJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "School added successfully",
			"id":      id,
		})
	}
}

// DeleteSchool removes the record and, best-effort, its image.
func (sc SchoolController) DeleteSchool(st *store.SchoolStore, blobs *storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid school ID"})
			return
		}

		school, err := st.GetByID(id)
		if errors.Is(err, store.ErrSchoolNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "School not found"})
			return
		}
		if err != nil {
			sc.Log.WithError(err).WithField("id", id).Error("failed to fetch school for deletion")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to delete school"})
			return
		}

		blobs.DeleteIfExists(school.Image)

		err = st.DeleteByID(id)
		if errors.Is(err, store.ErrSchoolNotFound) {
			// Lost the race against a concurrent delete.
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "School not found"})
			return
		}
		if err != nil {
			sc.Log.WithError(err).WithField("id", id).Error("failed to delete school")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to delete school"})
			return
		}

		utils.ResponseJSON(w, http.StatusOK, map[string]string{"message": "School deleted successfully"})
	}
}
