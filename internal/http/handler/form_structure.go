package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"formapi/internal/service"
)

// FormStructureRequest is the create/update payload. Any id or dateCreated sent by the
// client is ignored.
type FormStructureRequest struct {
	Name          string `json:"name" validate:"notblank"`
	StructureJSON string `json:"structureJson" validate:"notblank"`
}

// ListFormStructures godoc
// @Summary List form structures
// @Description Returns a page of form structures ordered by creation time, newest first.
// @Tags form-structures
// @Produce json
// @Param page query int false "zero-based page index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {object} service.Page[model.FormStructure]
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /form-structures [get]
func ListFormStructures(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		size, err := queryInt(c, "size", service.DefaultPageSize)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SIZE", "invalid size")
		}

		res, err := svc.List(c.UserContext(), page, size)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// SearchFormStructures godoc
// @Summary Search form structures by name
// @Description Case-insensitive substring match on the name.
// @Tags form-structures
// @Produce json
// @Param name query string false "substring to look for"
// @Param page query int false "zero-based page index" default(0)
// @Param size query int false "page size" default(10)
// @Success 200 {object} service.Page[model.FormStructure]
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /form-structures/search [get]
func SearchFormStructures(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "invalid page")
		}
		size, err := queryInt(c, "size", service.DefaultPageSize)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SIZE", "invalid size")
		}

		res, err := svc.SearchByName(c.UserContext(), c.Query("name"), page, size)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(res)
	}
}

// ListFormSummaries godoc
// @Summary List form structure summaries
// @Description Returns id, name and dateCreated of every form structure without the JSON payload.
// @Tags form-structures
// @Produce json
// @Success 200 {array} model.FormSummary
// @Failure 500 {object} errorPayload
// @Router /form-structures/summary [get]
func ListFormSummaries(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListSummaries(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// GetFormStructure godoc
// @Summary Get a form structure
// @Tags form-structures
// @Produce json
// @Param id path int true "form structure id"
// @Success 200 {object} model.FormStructure
// @Failure 400 {object} errorPayload
// @Failure 404
// @Failure 500 {object} errorPayload
// @Router /form-structures/{id} [get]
func GetFormStructure(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fs, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fs)
	}
}

// CreateFormStructure godoc
// @Summary Create a form structure
// @Tags form-structures
// @Accept json
// @Produce json
// @Param body body FormStructureRequest true "form structure"
// @Success 201 {object} model.FormStructure
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errorPayload
// @Router /form-structures [post]
func CreateFormStructure(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, done, err := bindFormStructure(c)
		if done {
			return err
		}

		fs, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fs)
	}
}

// UpdateFormStructure godoc
// @Summary Update a form structure
// @Description Replaces name and structureJson. id and dateCreated are never changed.
// @Tags form-structures
// @Accept json
// @Produce json
// @Param id path int true "form structure id"
// @Param body body FormStructureRequest true "form structure"
// @Success 200 {object} model.FormStructure
// @Failure 400 {object} map[string]string
// @Failure 404
// @Failure 500 {object} errorPayload
// @Router /form-structures/{id} [put]
func UpdateFormStructure(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		in, done, err := bindFormStructure(c)
		if done {
			return err
		}

		fs, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fs)
	}
}

// DeleteFormStructure godoc
// @Summary Delete a form structure
// @Tags form-structures
// @Param id path int true "form structure id"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404
// @Failure 500 {object} errorPayload
// @Router /form-structures/{id} [delete]
func DeleteFormStructure(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportFormStructure godoc
// @Summary Export a form structure to object storage
// @Description Uploads structureJson as a JSON object and returns a presigned download URL.
// @Tags form-structures
// @Produce json
// @Param id path int true "form structure id"
// @Success 200 {object} service.ExportResult
// @Failure 400 {object} errorPayload
// @Failure 404
// @Failure 503 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /form-structures/{id}/export [post]
func ExportFormStructure(svc service.FormStructureService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Export(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrExportUnavailable) {
				return writeError(c, fiber.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", "export storage is not configured")
			}
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// serviceError translates service sentinel errors into HTTP responses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return notFound(c)
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	default:
		return internalError(c, err)
	}
}

// bindFormStructure parses and validates the request body. When done is true the response
// has already been written and err must be returned by the handler as is.
func bindFormStructure(c *fiber.Ctx) (in service.FormStructureInput, done bool, err error) {
	var req FormStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return in, true, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
	}

	fields, err := validateStruct(&req)
	if err != nil {
		return in, true, internalError(c, err)
	}
	if len(fields) > 0 {
		return in, true, c.Status(fiber.StatusBadRequest).JSON(fields)
	}

	return service.FormStructureInput{Name: req.Name, StructureJSON: req.StructureJSON}, false, nil
}

// parseID reads the :id route parameter; only positive integers are accepted.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
