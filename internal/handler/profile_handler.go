package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents a profile creation request.
type CreateProfileRequest struct {
	FullName string  `json:"fullName" validate:"required,max=255"`
	JobTitle *string `json:"jobTitle" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=64"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// CreateProfile godoc
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProfileRequest true "Profile data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/profiles [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	var req CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileService.Create(c.Request().Context(), session.Account.ID, service.ProfileInput{
		FullName: req.FullName,
		JobTitle: req.JobTitle,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"profile": profile})
}

// ListProfiles godoc
// @Summary List the session account's profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /my/profiles [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	profiles, err := h.profileService.List(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"profiles": profiles})
}
