package utils

import (
	"encoding/json"
	"net/http"
	"regexp"

	"school-directory/models"
)

var (
	emailRegex   = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	contactRegex = regexp.MustCompile(`^\d{10}$`)
)

func RespondWithError(w http.ResponseWriter, status int, apiErr models.Error) {
	ResponseJSON(w, status, apiErr)
}

func ResponseJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
	}
}

// IsValidEmail checks the local@domain.tld shape, case-insensitively. The
// input is matched as-is: padding is not forgiven, since the raw value is what
// gets stored.
func IsValidEmail(input string) bool {
	return emailRegex.MatchString(input)
}

// IsContactNumber requires exactly 10 digits, nothing else.
func IsContactNumber(input string) bool {
	return contactRegex.MatchString(input)
}
