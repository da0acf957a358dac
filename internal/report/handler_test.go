package report

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewHandler(logger), &buf
}

func request(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/report",
		Body:       body,
	}
}

// logRecords parses the captured slog output into one map per record.
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestHandle_FixedSuccessResponse(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), request(`{"csp-report":{"document-uri":"https://example.com/"}}`))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Headers["Content-Type"])
	assert.Equal(t, "success", resp.Body)
}

func TestHandle_NeverEchoesPayload(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.Handle(context.Background(), request(`{"echo-me":"secret-value"}`))
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Body)
	assert.NotContains(t, resp.Body, "secret-value")
}

func TestHandle_LoggedReportRoundTrips(t *testing.T) {
	h, buf := newTestHandler()
	body := `{"b":2,"a":{"nested":["x","y"],"text":"中文テスト"}}`

	_, err := h.Handle(context.Background(), request(body))
	require.NoError(t, err)

	records := logRecords(t, buf)
	require.Len(t, records, 1)

	reportField, ok := records[0]["report"].(string)
	require.True(t, ok, "log record must carry the report payload")

	var logged, original any
	require.NoError(t, json.Unmarshal([]byte(reportField), &logged))
	require.NoError(t, json.Unmarshal([]byte(body), &original))
	assert.Equal(t, original, logged)
}

func TestHandle_CanonicalKeyOrderInLog(t *testing.T) {
	h, buf := newTestHandler()

	_, err := h.Handle(context.Background(), request(`{"b":2,"a":1}`))
	require.NoError(t, err)

	records := logRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, `{"a":1,"b":2}`, records[0]["report"])
}

func TestHandle_Idempotent(t *testing.T) {
	h, buf := newTestHandler()
	req := request(`{"a":1}`)

	first, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, logRecords(t, buf), 2)
}

func TestHandle_MalformedBodyStillSucceeds(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "not-json"},
		{"truncated", `{"csp-report":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler()

			resp, err := h.Handle(context.Background(), request(tt.body))
			require.NoError(t, err)

			// Failure policy: log the raw body and the reason, return 200.
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, "success", resp.Body)

			records := logRecords(t, buf)
			require.Len(t, records, 1)
			assert.Equal(t, "ERROR", records[0]["level"])
			assert.Equal(t, tt.body, records[0]["raw_body"])
			assert.NotEmpty(t, records[0]["error"])
		})
	}
}

func TestHandle_OneLogRecordPerInvocation(t *testing.T) {
	h, buf := newTestHandler()

	_, err := h.Handle(context.Background(), request(`{"a":1}`))
	require.NoError(t, err)

	assert.Len(t, logRecords(t, buf), 1)
}

func TestGatewayHandler_PostReport(t *testing.T) {
	h, buf := newTestHandler()
	server := httptest.NewServer(GatewayHandler(h))
	defer server.Close()

	resp, err := server.Client().Post(server.URL+"/report", "application/json",
		strings.NewReader(`{"csp-report":{"blocked-uri":"https://evil.example/"}}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "success", body.String())

	assert.Len(t, logRecords(t, buf), 1)
}

func TestGatewayHandler_RejectsNonPost(t *testing.T) {
	h, _ := newTestHandler()
	server := httptest.NewServer(GatewayHandler(h))
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 405, resp.StatusCode)
}
