// Package listing derives the browse view from the full record set and the
// current query. The projection is pure: same records and query in, same view
// out, no state kept anywhere else.
package listing

import (
	"sort"
	"strings"

	"school-directory/models"
)

// PageSize is fixed; the UI renders 12 cards per page.
const PageSize = 12

type ViewMode string

const (
	ViewCities ViewMode = "cities"
	ViewGrid   ViewMode = "grid"
	ViewList   ViewMode = "list"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByCity   SortKey = "city"
	SortByNewest SortKey = "newest"
)

// Query is the serializable view state: the four inputs the projection depends
// on plus the requested view mode. Transitions that change what is shown reset
// the page to 1.
type Query struct {
	Search string   `json:"search"`
	City   string   `json:"city"`
	Sort   SortKey  `json:"sort"`
	Page   int      `json:"page"`
	View   ViewMode `json:"view"`
}

// NewQuery is the initial state: city-group view, sorted by name, first page.
func NewQuery() Query {
	return Query{Sort: SortByName, Page: 1, View: ViewCities}
}

func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 1
	return q
}

func (q Query) WithCity(city string) Query {
	q.City = city
	q.Page = 1
	return q
}

func (q Query) WithSort(key SortKey) Query {
	q.Sort = key
	q.Page = 1
	return q
}

// SelectCity is the "clicked a city group" transition: filter to the city and
// switch to the flat list.
func (q Query) SelectCity(city string) Query {
	q.City = city
	q.View = ViewList
	q.Page = 1
	return q
}

// Reset clears every filter and returns to the city-group view.
func (q Query) Reset() Query {
	return NewQuery()
}

// CityGroup is one partition of the full record set.
type CityGroup struct {
	City        string          `json:"city"`
	Schools     []models.School `json:"schools"`
	SchoolCount int             `json:"school_count"`
}

// View is what the client renders: the current page of matches plus the city
// groups computed over the unfiltered set.
type View struct {
	Schools    []models.School `json:"schools"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	Mode       ViewMode        `json:"view_mode"`
	Cities     []CityGroup     `json:"cities"`
}

// A matchStrategy returns the records matching the term, or an empty slice to
// let the next strategy run.
type matchStrategy func(schools []models.School, term string) []models.School

func matchByName(schools []models.School, term string) []models.School {
	var matches []models.School
	for _, s := range schools {
		if strings.Contains(strings.ToLower(s.Name), term) {
			matches = append(matches, s)
		}
	}
	return matches
}

func matchByCityOrAddress(schools []models.School, term string) []models.School {
	var matches []models.School
	for _, s := range schools {
		if strings.Contains(strings.ToLower(s.City), term) ||
			strings.Contains(strings.ToLower(s.Address), term) {
			matches = append(matches, s)
		}
	}
	return matches
}

var searchStrategies = []matchStrategy{matchByName, matchByCityOrAddress}

// applySearch runs the strategies in order and reports whether anything
// matched. A term that equals a school name outright overrides the strategies
// and narrows the result to that single record.
func applySearch(schools []models.School, term string) ([]models.School, bool) {
	term = strings.ToLower(term)

	filtered := []models.School{}
	found := false
	for _, strategy := range searchStrategies {
		if matches := strategy(schools, term); len(matches) > 0 {
			filtered = matches
			found = true
			break
		}
	}

	for _, s := range schools {
		if strings.EqualFold(s.Name, term) {
			return []models.School{s}, true
		}
	}

	return filtered, found
}

func sortSchools(schools []models.School, key SortKey) {
	sort.SliceStable(schools, func(i, j int) bool {
		switch key {
		case SortByCity:
			return schools[i].City < schools[j].City
		case SortByNewest:
			return schools[i].CreatedAt.After(schools[j].CreatedAt)
		default: // name
			return schools[i].Name < schools[j].Name
		}
	})
}

// GroupByCity partitions the full record set by distinct city, sorted by city
// name ascending.
func GroupByCity(schools []models.School) []CityGroup {
	byCity := make(map[string][]models.School)
	for _, s := range schools {
		byCity[s.City] = append(byCity[s.City], s)
	}

	cities := make([]string, 0, len(byCity))
	for city := range byCity {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	groups := make([]CityGroup, 0, len(cities))
	for _, city := range cities {
		groups = append(groups, CityGroup{
			City:        city,
			Schools:     byCity[city],
			SchoolCount: len(byCity[city]),
		})
	}
	return groups
}

// Project computes the view for the given records and query. Search and city
// filter are applied in that order, then sort, then pagination. A search that
// finds matches forces the flat list view; city groups always cover the
// unfiltered set.
func Project(schools []models.School, q Query) View {
	mode := q.View
	if mode == "" {
		mode = ViewCities
	}

	filtered := schools
	if q.Search != "" {
		matches, found := applySearch(schools, q.Search)
		filtered = matches
		if found {
			mode = ViewList
		}
	}

	if q.City != "" {
		var byCity []models.School
		for _, s := range filtered {
			if s.City == q.City {
				byCity = append(byCity, s)
			}
		}
		filtered = byCity
	}

	// Sort a copy so the caller's slice keeps its order.
	sorted := append([]models.School{}, filtered...)
	sortSchools(sorted, q.Sort)

	total := len(sorted)
	totalPages := (total + PageSize - 1) / PageSize

	// Clamp into [1, totalPages]; an empty result set pins the page to 1.
	page := q.Page
	if page < 1 || totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Schools:    sorted[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    PageSize,
		Mode:       mode,
		Cities:     GroupByCity(schools),
	}
}
