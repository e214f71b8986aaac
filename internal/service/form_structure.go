package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"
	"time"

	"formapi/internal/model"
	"formapi/internal/repository"
	"formapi/internal/storage"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("form structure not found")
	ErrExportUnavailable = errors.New("export storage is not configured")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	exportPrefix = "form-structures"
)

// Page is the service-level DTO for a paginated slice of an ordered result set.
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// FormStructureInput carries the caller-editable fields of a form structure.
type FormStructureInput struct {
	Name          string
	StructureJSON string
}

// ExportResult describes a form structure published to object storage.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FormStructureService defines the use cases for handling form structures.
type FormStructureService interface {
	// List returns a page of form structures, newest first.
	List(ctx context.Context, page, size int) (*Page[model.FormStructure], error)

	// Get returns a single form structure by its ID.
	Get(ctx context.Context, id int64) (*model.FormStructure, error)

	// Create stores a new form structure and stamps its creation time.
	Create(ctx context.Context, in FormStructureInput) (*model.FormStructure, error)

	// Update replaces the name and structure JSON of an existing form structure.
	// ID and DateCreated are preserved.
	Update(ctx context.Context, id int64, in FormStructureInput) (*model.FormStructure, error)

	// Delete removes a form structure by ID.
	Delete(ctx context.Context, id int64) error

	// SearchByName returns a page of form structures whose name contains name, ignoring case.
	SearchByName(ctx context.Context, name string, page, size int) (*Page[model.FormStructure], error)

	// ListSummaries returns every form structure without its JSON payload.
	ListSummaries(ctx context.Context) ([]model.FormSummary, error)

	// Export uploads the structure JSON to object storage and returns a presigned download URL.
	Export(ctx context.Context, id int64) (*ExportResult, error)
}

// formStructureService is a concrete implementation of FormStructureService.
type formStructureService struct {
	store        storage.Storage
	repo         repository.FormStructureRepository
	exportExpiry time.Duration
}

// NewFormStructureService constructs a new FormStructureService.
// store may be nil, in which case Export returns ErrExportUnavailable.
func NewFormStructureService(store storage.Storage, repo repository.FormStructureRepository, exportExpiry time.Duration) FormStructureService {
	if exportExpiry <= 0 {
		exportExpiry = 15 * time.Minute
	}
	return &formStructureService{store: store, repo: repo, exportExpiry: exportExpiry}
}

// List returns paginated form structures without exposing repository types.
func (s *formStructureService) List(ctx context.Context, page, size int) (*Page[model.FormStructure], error) {
	page, size = normalizePage(page, size)
	res, err := s.repo.FindAll(ctx, pageQuery(page, size))
	if err != nil {
		return nil, err
	}
	return newPage(res, page, size), nil
}

// Get returns a form structure by ID.
func (s *formStructureService) Get(ctx context.Context, id int64) (*model.FormStructure, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	fs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fs, nil
}

func (s *formStructureService) Create(ctx context.Context, in FormStructureInput) (*model.FormStructure, error) {
	fs := &model.FormStructure{
		Name:          in.Name,
		StructureJSON: in.StructureJSON,
		// PostgreSQL stores microseconds; truncate so the response matches what is persisted.
		DateCreated: time.Now().UTC().Truncate(time.Microsecond),
	}
	stored, err := s.repo.Save(ctx, fs)
	if err != nil {
		return nil, fmt.Errorf("save form structure: %w", err)
	}
	return stored, nil
}

func (s *formStructureService) Update(ctx context.Context, id int64, in FormStructureInput) (*model.FormStructure, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.StructureJSON = in.StructureJSON

	stored, err := s.repo.Save(ctx, existing)
	if err != nil {
		// Row removed between the lookup and the update.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("save form structure: %w", err)
	}
	return stored, nil
}

// Delete checks the form structure exists, then deletes its record.
func (s *formStructureService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *formStructureService) SearchByName(ctx context.Context, name string, page, size int) (*Page[model.FormStructure], error) {
	page, size = normalizePage(page, size)
	res, err := s.repo.FindByNameContainingIgnoreCase(ctx, name, pageQuery(page, size))
	if err != nil {
		return nil, err
	}
	return newPage(res, page, size), nil
}

func (s *formStructureService) ListSummaries(ctx context.Context) ([]model.FormSummary, error) {
	return s.repo.FindAllSummaries(ctx)
}

func (s *formStructureService) Export(ctx context.Context, id int64) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportUnavailable
	}
	fs, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := path.Join(exportPrefix, strconv.FormatInt(fs.ID, 10)+".json")
	if _, err := s.store.Put(ctx, key, strings.NewReader(fs.StructureJSON), storage.PutObjectOptions{
		Size:        int64(len(fs.StructureJSON)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"form-id": strconv.FormatInt(fs.ID, 10),
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.exportExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &ExportResult{
		Key:       key,
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(s.exportExpiry),
	}, nil
}

// normalizePage applies the page defaults and bounds. page is capped so that page*size
// never overflows into a negative offset; such a page is simply past the last row.
func normalizePage(page, size int) (int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 0 {
		page = 0
	}
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}
	return page, size
}

func pageQuery(page, size int) repository.PageQuery {
	return repository.PageQuery{Limit: size, Offset: page * size}
}

func newPage[T any](res *repository.PageResult[T], page, size int) *Page[T] {
	return &Page[T]{
		Content:       res.Items,
		Page:          page,
		Size:          size,
		TotalElements: res.Total,
		TotalPages:    (res.Total + size - 1) / size,
	}
}
