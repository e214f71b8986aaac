package repository

import (
	"context"

	"formapi/internal/model"
)

// FormStructureRepository defines data access for form structures using SQL queries only.
// No business logic here, only persistence operations.
type FormStructureRepository interface {
	// FindAll returns a page of form structures ordered by creation time, newest first.
	FindAll(ctx context.Context, pq PageQuery) (*PageResult[model.FormStructure], error)

	// FindByID returns a form structure by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.FormStructure, error)

	// FindByNameContainingIgnoreCase returns a page of form structures whose name contains
	// substring, compared case-insensitively. The substring is matched literally.
	FindByNameContainingIgnoreCase(ctx context.Context, substring string, pq PageQuery) (*PageResult[model.FormStructure], error)

	// FindAllSummaries returns every form structure without its JSON payload, newest first.
	FindAllSummaries(ctx context.Context) ([]model.FormSummary, error)

	// Save inserts the record when ID is zero and otherwise replaces its name and structure JSON.
	// DateCreated is written on insert only. Updating a missing row returns sql.ErrNoRows.
	Save(ctx context.Context, fs *model.FormStructure) (*model.FormStructure, error)

	// DeleteByID removes a form structure. It returns nil if the row was deleted or did not exist.
	DeleteByID(ctx context.Context, id int64) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
