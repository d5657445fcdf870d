package dto

// SearchFilters are the optional predicates of the search filter stage.
// Absent fields impose no restriction; present fields compose with AND.
type SearchFilters struct {
	Query    string
	Gender   string
	PaidOnly bool
}
