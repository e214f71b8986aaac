package model

import "time"

// FormStructure is a stored form layout: a name, its creation time and an opaque JSON document.
// StructureJSON is kept as raw text and never parsed by the service.
type FormStructure struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DateCreated   time.Time `json:"dateCreated"`
	StructureJSON string    `json:"structureJson"`
}

// FormSummary is the listing projection of a FormStructure without the JSON payload.
type FormSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"dateCreated"`
}
