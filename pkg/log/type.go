package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// RequestID is the context key holding the request identifier.
type RequestID struct{}

// UserID is the context key holding the authenticated user identifier.
type UserID struct{}
