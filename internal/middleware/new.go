package middleware

import (
	"rentdesk-srv/config"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/scope"
)

// Middleware carries what the session guards need: the token verifier and
// the name of the cookie browsers send it in.
type Middleware struct {
	l      log.Logger
	tokens scope.Manager
	cookie config.CookieConfig
}

func New(l log.Logger, tokens scope.Manager, cookie config.CookieConfig) Middleware {
	return Middleware{l: l, tokens: tokens, cookie: cookie}
}
