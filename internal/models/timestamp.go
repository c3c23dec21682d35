package models

import (
	"encoding/json"
	"reflect"
	"time"
)

// Timestamp is an RFC 3339 instant in a request payload.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON reports a malformed instant as a type error so the decoder
// names the offending field.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var parsed time.Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(parsed)}
	}
	t.Time = parsed
	return nil
}
