package db

import "errors"

var (
	ErrLocationNotFound = errors.New("product location not found")
)
