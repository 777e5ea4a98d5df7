package greeting

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const Text = "Hello from Go on Render 🚀"

func Handler(c echo.Context) error {
	return c.String(http.StatusOK, Text)
}
