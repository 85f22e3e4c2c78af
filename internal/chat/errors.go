package chat

import "errors"

var ErrEmptyInput = errors.New("message cannot be empty")
