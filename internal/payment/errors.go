package payment

import "errors"

var (
	ErrInvalidSort = errors.New("payment: invalid sort")
	ErrForbidden   = errors.New("payment: due rents are not available to tenants")
)
