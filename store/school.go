package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"school-directory/models"
)

// ErrSchoolNotFound signals an unknown identifier. Callers map it to 404.
var ErrSchoolNotFound = errors.New("school not found")

const schoolColumns = `id, name, address, city, state, contact, image, email_id,
	about, academic_programs, facilities, website, established_year,
	principal_name, total_students, board_affiliation, created_at`

// SchoolStore runs the single-statement queries against the schools table.
type SchoolStore struct {
	db *sql.DB
}

func NewSchoolStore(db *sql.DB) *SchoolStore {
	return &SchoolStore{db: db}
}

// ListAll returns every school, newest first.
func (st *SchoolStore) ListAll() ([]models.School, error) {
	rows, err := st.db.Query(`SELECT ` + schoolColumns + ` FROM schools ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select schools: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schools: %w", err)
	}
	return schools, nil
}

// GetByID returns a single school or ErrSchoolNotFound.
func (st *SchoolStore) GetByID(id int64) (models.School, error) {
	row := st.db.QueryRow(`SELECT `+schoolColumns+` FROM schools WHERE id = ?`, id)
	school, err := scanSchool(row)
	if err == sql.ErrNoRows {
		return models.School{}, ErrSchoolNotFound
	}
	if err != nil {
		return models.School{}, fmt.Errorf("select school %d: %w", id, err)
	}
	return school, nil
}

// Insert creates the row, assigns the creation timestamp and returns the new id.
func (st *SchoolStore) Insert(school *models.School) (int64, error) {
	school.CreatedAt = time.Now().UTC()
	result, err := st.db.Exec(`INSERT INTO schools
		(name, address, city, state, contact, image, email_id,
		 about, academic_programs, facilities, website, established_year,
		 principal_name, total_students, board_affiliation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		school.Name, school.Address, school.City, school.State, school.Contact,
		school.Image, school.EmailID, school.About, school.AcademicPrograms,
		school.Facilities, school.Website, school.EstablishedYear,
		school.PrincipalName, school.TotalStudents, school.BoardAffiliation,
		school.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert school: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}
	school.ID = id
	return id, nil
}

// DeleteByID removes the row or reports ErrSchoolNotFound.
func (st *SchoolStore) DeleteByID(id int64) error {
	result, err := st.db.Exec(`DELETE FROM schools WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete school %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSchoolNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchool(row rowScanner) (models.School, error) {
	var school models.School
	var image, about, academic, facilities, website sql.NullString
	var established, principal, students, board sql.NullString
	err := row.Scan(&school.ID, &school.Name, &school.Address, &school.City,
		&school.State, &school.Contact, &image, &school.EmailID,
		&about, &academic, &facilities, &website,
		&established, &principal, &students, &board,
		&school.CreatedAt)
	if err != nil {
		return models.School{}, err
	}
	school.Image = image.String
	school.About = about.String
	school.AcademicPrograms = academic.String
	school.Facilities = facilities.String
	school.Website = website.String
	school.EstablishedYear = established.String
	school.PrincipalName = principal.String
	school.TotalStudents = students.String
	school.BoardAffiliation = board.String
	return school, nil
}
