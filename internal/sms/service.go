package sms

import (
	"context"
	"sync"

	"sms-relay/app"
	"sms-relay/config"
	"sms-relay/internal/model"
	"sms-relay/internal/provider"
	"sms-relay/pkg/metrics"
	"sms-relay/pkg/tracing"
)

// Send dispatches a validated single-send request.
func Send(ctx context.Context, req model.SendRequest) model.SendResult {
	ctx, span := tracing.Start(ctx, "sms.send")
	defer span.End()

	to, err := normalizeNumber(req.PhoneNumber)
	if err != nil {
		return model.SendResult{Success: false, Error: err.Error()}
	}

	res := provider.Dispatch(ctx, to, req.Message)
	if !res.Success {
		span.SetAttributes(tracing.Attr("sms.error", res.Error))
	}
	return res
}

// SendBulk dispatches req.Message to every number, at most
// config.BulkConcurrency at a time. results[i] always describes
// req.PhoneNumbers[i]; numbers that are not E.164 fail without a provider call.
func SendBulk(ctx context.Context, req model.BulkSendRequest) model.BulkSendResult {
	ctx, span := tracing.Start(ctx, "sms.send_bulk",
		tracing.IntAttr("sms.recipients", len(req.PhoneNumbers)),
	)
	defer span.End()

	workers := config.BulkConcurrency
	if workers < 1 {
		workers = 1
	}

	results := make([]model.BulkItemResult, len(req.PhoneNumbers))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, num := range req.PhoneNumbers {
		results[i].PhoneNumber = num

		to, err := normalizeNumber(num)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}

		i := i // per-iteration copy (go1.22+ loopvar semantics on older toolchains)
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			res := provider.Dispatch(ctx, to, req.Message)
			results[i].Success = res.Success
			if !res.Success {
				results[i].Error = res.Error
			}
		}()
	}
	wg.Wait()

	out := model.BulkSendResult{
		Success: true,
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			out.Successful++
		} else {
			out.Failed++
		}
	}

	metrics.BulkProcessed(out.Successful, out.Failed)
	span.SetAttributes(
		tracing.IntAttr("sms.successful", out.Successful),
		tracing.IntAttr("sms.failed", out.Failed),
	)
	app.Logger.Info("bulk sms processed", "total", out.Total, "successful", out.Successful, "failed", out.Failed)

	return out
}
