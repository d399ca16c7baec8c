package http

import (
	"time"

	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/model"
)

type loginReq struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r loginReq) toInput() authentication.LoginInput {
	return authentication.LoginInput{Email: r.Email, Password: r.Password}
}

type userResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type sessionResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      userResp  `json:"user"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (h *handler) newSessionResp(o authentication.LoginOutput) sessionResp {
	return sessionResp{
		Token:     o.Token,
		ExpiresAt: o.ExpiresAt,
		User:      newUserResp(o.User),
	}
}
