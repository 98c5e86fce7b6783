package domain

import "time"

// GainArtifact is a persisted estimate: inputs, rounded detail and the rendered headline.
type GainArtifact struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Locale    Locale    `json:"locale"`

	Input    GainInput `json:"input"`
	Detail   Detail    `json:"detail"`
	Headline string    `json:"headline"`

	Files []string `json:"files,omitempty"`
}

// ExportFile is a rendered export to be written next to the artifact.
type ExportFile struct {
	Ext  string
	Body []byte
}
