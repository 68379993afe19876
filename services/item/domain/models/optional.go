package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNullValue is returned when a JSON field decoded into an Optional is null.
var ErrNullValue = errors.New("value must not be null")

// Optional holds a value together with whether it was supplied at all,
// so an omitted field can be told apart from one set to its zero value.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON marks the Optional as set. It is only invoked for keys present
// in the document; an explicit null is rejected.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrNullValue
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = v
	o.Set = true
	return nil
}

// MarshalJSON encodes the held value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// IsZero reports whether the Optional is unset, so `omitzero` drops it on encode.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}
