// Package report implements the CSP report ingest handler.
//
// The handler receives a violation report POSTed by a browser, parses the
// body as JSON, writes the canonicalized payload to the log sink, and
// returns a fixed 200 "success" response.
//
// Malformed bodies never fail the invocation: browsers fire CSP reports
// automatically and retry on errors, so a broken client could otherwise
// turn into a retry storm. Instead the raw body and the parse error are
// logged and the fixed success response is returned anyway. The bad
// payload always leaves a trace in the log sink.
package report

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
)

const (
	// responseBody is the fixed body returned for every handled request.
	responseBody = "success"

	contentType = "text/plain"
)

// Handler processes CSP violation reports. It holds no per-request state
// and is safe for concurrent invocations.
type Handler struct {
	log *slog.Logger
}

// NewHandler creates a handler that writes report records to log.
func NewHandler(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// Handle processes one report event: parse the body, emit exactly one log
// record, return the fixed success response. The returned error is always
// nil; every failure mode is logged and answered with 200 so reporting
// clients never retry.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	canonical, err := Canonicalize([]byte(req.Body))
	if err != nil {
		h.log.ErrorContext(ctx, "discarding unparseable report",
			slog.String("error", err.Error()),
			slog.String("raw_body", req.Body),
		)
		return successResponse(), nil
	}

	h.log.InfoContext(ctx, "csp report", slog.String("report", canonical))

	return successResponse(), nil
}

func successResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
		Body: responseBody,
	}
}
