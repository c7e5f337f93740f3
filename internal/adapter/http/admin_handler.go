package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler { return &AdminHandler{} }

// Dashboard serves the static staff page. The route is mounted behind
// basic auth; the page's own script reads the public JSON endpoints.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, dashboardHTML)
}
