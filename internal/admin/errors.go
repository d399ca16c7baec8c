package admin

import "errors"

var ErrForbidden = errors.New("admin: only super admins can list admins")
