package handler

import (
	"net/http"

	"marketnav/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
