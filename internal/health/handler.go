package health

import (
	"net/http"

	"sms-relay/config"
	"sms-relay/internal/model"

	"github.com/labstack/echo/v4"
)

// Handler godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Router       /health [get]
func Handler(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthStatus{Status: "OK", Service: config.AppName})
}
