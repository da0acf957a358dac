// Command csp-report is the serverless handler that receives Content
// Security Policy violation reports from API Gateway and writes them to
// CloudWatch Logs.
//
// Build for the provided.al2023 runtime:
//
//	GOOS=linux GOARCH=arm64 go build -o bootstrap ./cmd/csp-report
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/chmreid/csp-report-lambda-cloudwatch/internal/report"
)

func main() {
	// Configured once per cold start. The Lambda runtime forwards stdout
	// to the function's CloudWatch log group.
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.TimeValue(a.Value.Time().UTC())
			}
			return a
		},
	}))
	slog.SetDefault(log)

	lambda.Start(report.NewHandler(log).Handle)
}
