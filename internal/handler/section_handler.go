package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/model"
	"github.com/Modular-CV/backend/internal/service"
)

// SectionHandler handles section endpoints.
type SectionHandler struct {
	sectionService service.SectionService
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(sectionService service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// CreateSectionRequest represents a section creation request.
type CreateSectionRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	EntryType string `json:"entryType" validate:"required,oneof=SKILL PROJECT PROFESSIONAL_EXPERIENCE EDUCATION COURSE CUSTOM"`
}

// CreateSection godoc
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSectionRequest true "Section data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/sections [post]
func (h *SectionHandler) CreateSection(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	var req CreateSectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	section, err := h.sectionService.Create(c.Request().Context(), session.Account.ID, req.Title, model.EntryType(req.EntryType))
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"section": section})
}

// ListSections godoc
// @Summary List the session account's sections
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/sections [get]
func (h *SectionHandler) ListSections(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	sections, err := h.sectionService.List(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"sections": sections})
}
