package models

import "time"

// School is one directory entry. Field names follow the schools table columns.
type School struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Contact          string    `json:"contact"`
	Image            string    `json:"image"`
	EmailID          string    `json:"email_id"`
	About            string    `json:"about"`
	AcademicPrograms string    `json:"academic_programs"`
	Facilities       string    `json:"facilities"`
	Website          string    `json:"website"`
	EstablishedYear  string    `json:"established_year"`
	PrincipalName    string    `json:"principal_name"`
	TotalStudents    string    `json:"total_students"`
	BoardAffiliation string    `json:"board_affiliation"`
	CreatedAt        time.Time `json:"created_at"`
}
