package authentication

import (
	"time"

	"rentdesk-srv/internal/model"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}
