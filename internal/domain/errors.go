package domain

import "errors"

var (
	ErrDuplicateMenuItem = errors.New("menu item id already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrFetchFailed       = errors.New("menu fetch failed")
)
