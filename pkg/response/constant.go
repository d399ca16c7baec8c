package response

const (
	// StatusSuccess marks a successful envelope.
	StatusSuccess = "success"
	// StatusError marks a failed envelope.
	StatusError = "error"

	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"

	// MessageSuccess is the default message for successful responses.
	MessageSuccess = "Success"
	// MessageInternalError is the message used when an error has no public description.
	MessageInternalError = "Something went wrong"
	// MessageUnauthorized is returned when no valid session is present.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is returned when the session lacks the required role.
	MessageForbidden = "Forbidden"
	// MessageValidation is returned when request binding fails.
	MessageValidation = "Invalid request"
)
