package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves liveness endpoints.
type RootHandler struct {
	projectName string
}

// NewRootHandler creates a new root handler.
func NewRootHandler(projectName string) *RootHandler {
	return &RootHandler{projectName: projectName}
}

// Index godoc
// @Summary API greeting
// @Tags root
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router / [get]
func (h *RootHandler) Index(c echo.Context) error {
	return successMessage(c, http.StatusOK, h.projectName+" API is running")
}

// Health godoc
// @Summary Liveness probe
// @Tags root
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (h *RootHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
