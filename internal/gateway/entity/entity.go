// Package entity holds the persisted domain records. These are plain CRUD
// rows with referential links; all derived behavior lives in the services.
package entity

import (
	"time"

	"algolens/internal/trace"
)

// User owns projects.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project is one saved code submission. Category is the classifier's guess
// at save time and is refreshed whenever the code changes.
type Project struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Language  string         `json:"language"`
	Category  trace.Category `json:"category"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Algorithm is a reference implementation served to the UI as a starting
// point. Seeded rows ship with the server and are read-only.
type Algorithm struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    trace.Category `json:"category"`
	Language    string         `json:"language"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Seeded      bool           `json:"seeded"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Visualization is the stored result of executing a project through the
// pipeline. The row carries metadata only; the serialized step list lives
// in the step-blob store under the visualization ID.
type Visualization struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"projectId"`
	Category  trace.Category `json:"category"`
	StepCount int            `json:"stepCount"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
