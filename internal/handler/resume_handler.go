package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// ResumeHandler handles resume endpoints.
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// CreateResumeRequest represents a resume creation request.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// CreateResume godoc
// @Summary Create a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateResumeRequest true "Resume data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/resumes [post]
func (h *ResumeHandler) CreateResume(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	var req CreateResumeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resume, err := h.resumeService.Create(c.Request().Context(), session.Account.ID, req.Title)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"resume": resume})
}

// ListResumes godoc
// @Summary List the session account's resumes
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/resumes [get]
func (h *ResumeHandler) ListResumes(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	resumes, err := h.resumeService.List(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"resumes": resumes})
}

// GetResume godoc
// @Summary Get a resume
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param resumeId path string true "Resume ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /my/resumes/{resumeId} [get]
func (h *ResumeHandler) GetResume(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	resumeID, err := pathID(c, "resumeId", "resume")
	if err != nil {
		return err
	}

	resume, err := h.resumeService.Get(c.Request().Context(), session.Account.ID, resumeID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"resume": resume})
}
