package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx reply from the shop API.
type Error struct {
	StatusCode int
	Detail     Detail
}

func (e *Error) Error() string {
	if msg := e.Detail.Message(); msg != "" {
		return fmt.Sprintf("shop api: %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("shop api: %d", e.StatusCode)
}

// Message returns the server-provided display string, empty when the
// response carried none.
func (e *Error) Message() string {
	return e.Detail.Message()
}

func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is a 401 from the shop API.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// Detail models the API's error payload, which is either a single message
// or a list of per-field messages:
//
//	{"detail": "invalid credentials"}
//	{"detail": [{"msg": "field required"}, {"msg": "value too short"}]}
type Detail struct {
	single string
	fields []string
}

// Message resolves the detail into one display string. Field messages are
// joined with ", ".
func (d Detail) Message() string {
	if d.single != "" {
		return d.single
	}
	return strings.Join(d.fields, ", ")
}

func (d *Detail) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		d.single = single
		return nil
	}

	var fields []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unexpected detail payload: %w", err)
	}
	d.fields = d.fields[:0]
	for _, f := range fields {
		if f.Msg != "" {
			d.fields = append(d.fields, f.Msg)
		}
	}
	return nil
}

type errorBody struct {
	Detail Detail `json:"detail"`
}
