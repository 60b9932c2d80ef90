package model

import "errors"

var (
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrInvalidFields     = errors.New("invalid document fields")
)
