// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
)

// Kind classifies a failed backend request.
type Kind int

const (
	// NetworkFailure means that no response was received.
	NetworkFailure Kind = iota + 1
	// ServerError means that the backend answered with a non-2xx status.
	ServerError
	// MalformedResponse means that a 2xx response did not have the expected shape.
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ServerError:
		return "server error"
	case MalformedResponse:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Error is returned for all failed backend requests. Its text carries the keywords used to pick
// the user facing message: "fetch" for network failures, "JSON" for malformed responses and the
// HTTP status code for server errors.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NetworkFailure:
		return fmt.Sprintf("fetch failed: %s", e.Err)
	case ServerError:
		return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Message)
	case MalformedResponse:
		return fmt.Sprintf("malformed JSON response: %s", e.Err)
	default:
		return fmt.Sprintf("request failed: %s", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
