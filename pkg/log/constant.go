package log

const (
	// ModeProduction selects zap's production preset.
	ModeProduction = "production"
	// ModeDevelopment selects zap's development preset.
	ModeDevelopment = "debug"

	// EncodingJSON writes structured JSON lines.
	EncodingJSON = "json"
	// EncodingConsole writes human readable lines.
	EncodingConsole = "console"
)

// context keys propagated into every log line when present
const (
	fieldRequestID = "request_id"
	fieldUserID    = "user_id"
)
