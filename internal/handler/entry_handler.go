package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// EntryHandler handles section entry endpoints.
type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry godoc
// @Summary Create an entry in a section
// @Description The body must carry the branch matching the section's entry type,
// @Description e.g. projectEntry for a PROJECT section.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param request body object true "Entry payload"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /my/sections/{sectionId}/entries [post]
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	sectionID, err := pathID(c, "sectionId", "section")
	if err != nil {
		return err
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	entry, err := h.entryService.Create(c.Request().Context(), session.Account.ID, sectionID, payload)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"entry": entry})
}

// ListEntries godoc
// @Summary List a section's entries
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /my/sections/{sectionId}/entries [get]
func (h *EntryHandler) ListEntries(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	sectionID, err := pathID(c, "sectionId", "section")
	if err != nil {
		return err
	}

	entries, err := h.entryService.ListBySection(c.Request().Context(), session.Account.ID, sectionID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"sectionEntries": entries})
}
