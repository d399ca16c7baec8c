package middleware

import (
	"fmt"
	"strings"

	"rentdesk-srv/pkg/querysync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterValidators adds the custom binding rules used by request structs:
//
//	oneofci    like oneof, ignoring case ("status" query values arrive in any case)
//	uuidorall  a UUID filter value, or the "all" sentinel in any case
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("oneofci", validateOneOfCI); err != nil {
		return fmt.Errorf("failed to register oneofci validator: %w", err)
	}
	if err := v.RegisterValidation("uuidorall", validateUUIDOrAll); err != nil {
		return fmt.Errorf("failed to register uuidorall validator: %w", err)
	}
	return nil
}

func validateOneOfCI(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, allowed := range strings.Fields(fl.Param()) {
		if strings.EqualFold(value, allowed) {
			return true
		}
	}
	return false
}

func validateUUIDOrAll(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if strings.EqualFold(value, querysync.All) {
		return true
	}
	_, err := uuid.Parse(value)
	return err == nil
}
