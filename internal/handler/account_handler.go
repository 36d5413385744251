package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Modular-CV/backend/internal/auth"
	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/service"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRequest represents an account registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates an unverified account and mails a verification link.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, echo.Map{"account": account})
}

// Verify godoc
// @Summary Verify an account email
// @Tags accounts
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /accounts/verify/{token} [post]
func (h *AccountHandler) Verify(c echo.Context) error {
	if _, err := h.accountService.Verify(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}
	return successMessage(c, http.StatusOK, "The account has been verified")
}

// GetMyAccount godoc
// @Summary Get the session's account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /accounts/my [get]
func (h *AccountHandler) GetMyAccount(c echo.Context) error {
	session, ok := auth.SessionFrom(c)
	if !ok {
		return apperrors.ErrAccessTokenMissing
	}

	account, err := h.accountService.GetAccount(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, echo.Map{"account": account})
}
