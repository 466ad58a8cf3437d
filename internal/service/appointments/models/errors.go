package models

import "errors"

// ErrInvalidStatus возвращается при некорректном статусе записи
var ErrInvalidStatus = errors.New("invalid appointment status")
