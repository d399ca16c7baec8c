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
		return req, model.Scope{}, bindError("query", err)
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processMarkReadRequest(c *gin.Context) (markReadReq, model.Scope, error) {
	var req markReadReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, model.Scope{}, bindError("id", err)
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processBroadcastRequest(c *gin.Context) (broadcastReq, model.Scope, error) {
	var req broadcastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, bindError("body", err)
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func bindError(field string, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return err
	}
	return pkgErrors.NewValidationError(field, err.Error())
}
