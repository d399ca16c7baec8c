package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the verified content of a session token. The user id is the subject.
type Payload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}
