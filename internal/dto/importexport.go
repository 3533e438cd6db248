package dto

// ImportRowResult reports the outcome of one CSV line. Status is one of
// "Imported", "Book ID exists", "Username exists", "Student ID exists" or
// "Missing required fields".
type ImportRowResult struct {
	Line   int    `json:"line"`
	Status string `json:"status"`
}

// ImportSummaryResponse wraps a whole CSV import run.
type ImportSummaryResponse struct {
	Total    int               `json:"total"`
	Imported int               `json:"imported"`
	Rows     []ImportRowResult `json:"rows"`
}
