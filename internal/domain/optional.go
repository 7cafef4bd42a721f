package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state value: absent from the payload, explicitly null,
// or present. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{null: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value when present, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// IsPresent reports whether a value was supplied.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsNull reports whether the value was supplied as an explicit null.
func (o Optional[T]) IsNull() bool { return o.null }

// IsAbsent reports whether the value was never supplied.
func (o Optional[T]) IsAbsent() bool { return !o.present && !o.null }

// ValuePtr returns a *T pointing at a copy of the value, or a nil *T when no
// value is present. The validator uses it to look through the wrapper.
func (o Optional[T]) ValuePtr() any {
	if !o.present {
		return (*T)(nil)
	}
	v := o.value
	return &v
}

// MarshalJSON writes the value, or null when it is absent or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON records presence. It is never called for a missing key, which
// leaves the receiver absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
