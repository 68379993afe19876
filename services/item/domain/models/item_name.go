package models

import (
	"errors"
	"strings"
)

// ItemName is a value object holding a trimmed item name.
type ItemName string

var errEmptyItemName = errors.New("item name must not be empty")

// NewItemName trims surrounding whitespace and rejects names that end up empty.
func NewItemName(s string) (ItemName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errEmptyItemName
	}
	return ItemName(trimmed), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
