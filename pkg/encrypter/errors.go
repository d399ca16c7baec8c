package encrypter

import "errors"

var ErrEmptyPassword = errors.New("encrypter: password is empty")
