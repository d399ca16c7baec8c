package scope

// Manager verifies session tokens.
type Manager interface {
	Verify(token string) (Payload, error)
}
