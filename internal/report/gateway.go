package report

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// GatewayHandler adapts the Lambda handler to net/http for local
// development, emulating the API Gateway proxy integration: the request
// body is passed through as text and the handler's status, headers, and
// body are written back verbatim.
func GatewayHandler(h *Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "reading request body", http.StatusBadRequest)
			return
		}

		headers := make(map[string]string, len(r.Header))
		for name := range r.Header {
			headers[name] = r.Header.Get(name)
		}

		resp, err := h.Handle(r.Context(), events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Headers:    headers,
			Body:       string(body),
		})
		if err != nil {
			// The handler contract never returns an error; treat one as a
			// platform fault the way the real gateway would.
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	})
}
