package http

import (
	"rentdesk-srv/internal/model"
	pkgErrors "rentdesk-srv/pkg/errors"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, bindError(err)
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDetailRequest(c *gin.Context) (detailReq, model.Scope, error) {
	var req detailReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, model.Scope{}, bindError(err)
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

// bindError keeps validator errors as they are and turns parse errors
// (e.g. page=abc) into a 400 instead of a 500.
func bindError(err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return err
	}
	return pkgErrors.NewValidationError("query", err.Error())
}
