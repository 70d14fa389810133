package domain

import "time"

type Counters struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// JobView is a consistent snapshot of a job, safe to hand out to callers.
type JobView struct {
	ID            string             `json:"processingId"`
	FileName      string             `json:"fileName"`
	Status        JobStatus          `json:"status"`
	Counters      Counters           `json:"summary"`
	Failures      []FailureView      `json:"errors"`
	Documents     []DocumentArtifact `json:"documents"`
	ErrorReport   *ErrorReport       `json:"errorReport,omitempty"`
	SummaryReport string             `json:"summaryReport,omitempty"`
	Warning       string             `json:"warning,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type FailureView struct {
	Position int               `json:"row"`
	Row      map[string]string `json:"rowData"`
	Reason   string            `json:"error"`
}
