package tenant

import "errors"

var ErrForbidden = errors.New("tenant: tenants cannot list tenants")
