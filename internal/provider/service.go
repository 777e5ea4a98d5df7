package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sms-relay/app"
	"sms-relay/internal/model"
	"sms-relay/internal/provider/infobip"
	"sms-relay/pkg/metrics"
	"sms-relay/pkg/tracing"
)

const sentMessage = "SMS sent successfully"

type Sender interface {
	Name() string
	Send(ctx context.Context, to, text string) (any, error)
}

var (
	sender      Sender
	sendTimeout = 10 * time.Second
)

// Configure installs the sender used by Dispatch and its per-call timeout.
func Configure(s Sender, timeout time.Duration) {
	sender = s
	if timeout > 0 {
		sendTimeout = timeout
	}
}

// Dispatch makes exactly one provider attempt and folds the outcome into a
// SendResult. Provider and transport failures are returned as values.
func Dispatch(ctx context.Context, to, text string) model.SendResult {
	if sender == nil {
		return model.SendResult{Success: false, Error: "send failure: provider not configured"}
	}

	ctx, span := tracing.Start(ctx, "provider.dispatch",
		tracing.Attr("provider", sender.Name()),
	)
	defer span.End()

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	var data any
	err := metrics.ProviderObserver(sender.Name(), func(c context.Context) error {
		var sendErr error
		data, sendErr = sender.Send(c, to, text)
		return sendErr
	})(sendCtx)

	if err != nil {
		tracing.Fail(span, err)
		return failure(err)
	}

	app.Logger.Info("sms dispatched", "provider", sender.Name())
	return model.SendResult{Success: true, Message: sentMessage, Data: data}
}

func failure(err error) model.SendResult {
	var httpErr *infobip.HTTPError
	if errors.As(err, &httpErr) {
		app.Logger.Warn("provider rejected sms", "status", httpErr.StatusCode, "err", err)
		details := httpErr.Body
		if details == nil {
			details = map[string]any{}
		}
		return model.SendResult{
			Success: false,
			Error:   fmt.Sprintf("HTTP error: %d", httpErr.StatusCode),
			Details: details,
		}
	}

	app.Logger.Error("sms send failure", "err", err)
	return model.SendResult{Success: false, Error: "send failure: " + err.Error()}
}
