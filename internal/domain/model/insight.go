package model

// InsightRecord is the persisted financial commentary.
type InsightRecord struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
	Language  string `json:"language"`
}
