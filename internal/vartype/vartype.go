// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package vartype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// placeholder is shown for values the backend did not deliver.
const placeholder = "N/A"

// VarFloat64 is a float64 value that remembers whether it was ever set.
type VarFloat64 = Variable[float64]

// Variable holds a value together with its initialization state. The backend may omit numeric
// fields or send "N/A" instead of a number, so an unset Variable is distinct from a zero value.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable returns a Variable initialized with value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Reset clears the value and marks the Variable as unset.
func (v *Variable[T]) Reset() {
	var zero T
	v.value = zero
	v.isset = false
}

// Value returns the stored value, which is the zero value of T when unset.
func (v Variable[T]) Value() T {
	return v.value
}

// ValueOr returns the stored value, or def if the Variable is unset.
func (v Variable[T]) ValueOr(def T) T {
	if !v.isset {
		return def
	}
	return v.value
}

// Set assigns val and marks the Variable as set.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet reports whether the Variable holds a value.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

func (v Variable[T]) String() string {
	if !v.isset {
		return placeholder
	}
	return fmt.Sprint(v.value)
}

// UnmarshalJSON decodes the value. JSON null, an empty string, non-numeric strings such as
// "N/A" and the non-finite strings "NaN" and "Inf" leave the Variable unset. Quoted numbers
// are accepted.
func (v *Variable[T]) UnmarshalJSON(data []byte) error {
	v.Reset()
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to decode string value: %w", err)
		}
		raw = strings.TrimSpace(raw)
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
			return nil
		}
		data = []byte(raw)
	}

	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return fmt.Errorf("failed to decode value: %w", err)
	}
	v.Set(val)
	return nil
}

// MarshalJSON encodes an unset Variable as null.
func (v Variable[T]) MarshalJSON() ([]byte, error) {
	if !v.isset {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
