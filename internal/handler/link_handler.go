package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// LinkHandler handles link endpoints.
type LinkHandler struct {
	linkService service.LinkService
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(linkService service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// CreateLinkRequest represents a link creation request.
type CreateLinkRequest struct {
	URL string `json:"url" validate:"required,url,max=2048"`
}

// CreateLink godoc
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLinkRequest true "Link data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/links [post]
func (h *LinkHandler) CreateLink(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	var req CreateLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	link, err := h.linkService.Create(c.Request().Context(), session.Account.ID, req.URL)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"link": link})
}

// ListLinks godoc
// @Summary List the session account's links
// @Tags links
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/links [get]
func (h *LinkHandler) ListLinks(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	links, err := h.linkService.List(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"links": links})
}
