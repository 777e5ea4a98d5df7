package sms

import (
	"encoding/json"
	"net/http"

	"sms-relay/app"
	"sms-relay/internal/model"

	"github.com/labstack/echo/v4"
)

// SendHandler godoc
// @Summary      Send one SMS
// @Tags         sms
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "recipient and text"
// @Success      200      {object}  model.SendResult
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.SendResult
// @Router       /send-sms [post]
func SendHandler(c echo.Context) error {
	var req model.SendRequest
	if err := decodeBody(c, &req); err != nil {
		app.Logger.Info("invalid input", "err", err)
		return badRequest(c, errBodyRequired)
	}

	if err := checkRequest(req); err != nil {
		app.Logger.Info("rejected send-sms", "err", err)
		return badRequest(c, err)
	}
	if _, err := normalizeNumber(req.PhoneNumber); err != nil {
		app.Logger.Info("rejected send-sms", "phone", req.PhoneNumber, "err", err)
		return badRequest(c, err)
	}

	res := Send(c.Request().Context(), req)
	if !res.Success {
		return c.JSON(http.StatusInternalServerError, res)
	}

	return c.JSON(http.StatusOK, res)
}

// BulkSendHandler godoc
// @Summary      Send one text to many recipients
// @Description  Per-recipient failures are reported in the body; the envelope is always 200 for a well-formed request.
// @Tags         sms
// @Accept       json
// @Produce      json
// @Param        request  body      model.BulkSendRequest  true  "recipients and text"
// @Success      200      {object}  model.BulkSendResult
// @Failure      400      {object}  model.ErrorResponse
// @Router       /send-bulk-sms [post]
func BulkSendHandler(c echo.Context) error {
	var req model.BulkSendRequest
	if err := decodeBody(c, &req); err != nil {
		app.Logger.Info("invalid input", "err", err)
		return badRequest(c, errBodyRequired)
	}

	if err := checkRequest(req); err != nil {
		app.Logger.Info("rejected send-bulk-sms", "err", err)
		return badRequest(c, err)
	}

	return c.JSON(http.StatusOK, SendBulk(c.Request().Context(), req))
}

func decodeBody(c echo.Context, dst any) error {
	body := c.Request().Body
	if body == nil {
		return errBodyRequired
	}
	return json.NewDecoder(body).Decode(dst)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Success: false, Error: err.Error()})
}
