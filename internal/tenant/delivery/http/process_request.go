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
		if _, ok := err.(validator.ValidationErrors); !ok {
			err = pkgErrors.NewValidationError("query", err.Error())
		}
		return req, model.Scope{}, err
	}

	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
