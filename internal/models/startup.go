// Package models defines core data structures for startup records, queries, and search results.
package models

// StartupRecord represents a single company loaded from the corpus file.
// Records are immutable once loaded; the store replaces the whole corpus on reload.
type StartupRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Categories  []string `json:"categories,omitempty"`
	Website     string   `json:"website,omitempty"`
	Funding     string   `json:"funding,omitempty"`
	Batch       string   `json:"batch,omitempty"`
	Stage       string   `json:"stage,omitempty"`
}

// Valid reports whether the record carries enough text to be scored.
// Records failing this are skipped at load time.
func (r *StartupRecord) Valid() bool {
	return r.Name != "" && r.Description != ""
}

// HasCategory reports whether the record is tagged with the given category label.
func (r *StartupRecord) HasCategory(category string) bool {
	for _, c := range r.Categories {
		if c == category {
			return true
		}
	}
	return false
}
