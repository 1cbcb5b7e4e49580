package http

import (
	"go.uber.org/zap"

	"weather-cli/pkg/log"
	"weather-cli/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a 2xx response has been decoded
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure, a non-2xx status or an undecodable body.
	// httpStatus is zero when no response was received.
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string)               {}
func (noopLogger) LogResponseSuccess(string, string, int, int64)              {}
func (noopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapHTTPLogger writes HTTP traffic to the application logger.
type ZapHTTPLogger struct{}

// NewZapHTTPLogger creates an HTTPLogger backed by pkg/log.
func NewZapHTTPLogger() *ZapHTTPLogger {
	return &ZapHTTPLogger{}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("Sending request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("headers", len(headers)))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Debug(msg.GetMessage("app.req-end", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("app.req-fail", method, url, httpStatus, latency, err.Error()),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
