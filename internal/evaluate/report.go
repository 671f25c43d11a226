package evaluate

import "time"

// Report summarizes one completed scoring run.
type Report struct {
	Dataset     string             `json:"dataset"`
	Output      string             `json:"output,omitempty"`
	Rows        int                `json:"rows"`
	SkippedRows int                `json:"skipped_rows,omitempty"`
	Models      []string           `json:"models"`
	Columns     []string           `json:"columns"`
	Means       map[string]float64 `json:"means"`
	Warnings    []string           `json:"warnings,omitempty"`
	Duration    time.Duration      `json:"-"`
}
