package model

import "errors"

var ErrSessionDoesNotExist = errors.New("session does not exist")
