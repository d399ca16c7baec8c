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

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processDueRequest(c *gin.Context) (dueReq, model.Scope, error) {
	var req dueReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, bindError(err)
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func bindError(err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return err
	}
	return pkgErrors.NewValidationError("query", err.Error())
}
