package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexString holds a short code such as a street number. Clients and legacy
// documents send it either as a string or as a number; it is always stored
// and rendered as a string.
type FlexString string

// UnmarshalJSON accepts a JSON string, a JSON number or null. Anything else
// is a type error naming the field.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(value))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return &json.UnmarshalTypeError{Value: raw, Type: reflect.TypeOf(*s)}
	}
	*s = FlexString(number.String())
	return nil
}

// UnmarshalBSONValue accepts string and numeric BSON types so documents
// written by other tools decode without failing the whole request.
func (s *FlexString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*s = ""
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(value))
		return nil
	case bsontype.Int32, bsontype.Int64:
		var value int64
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*s = FlexString(strconv.FormatInt(value, 10))
		return nil
	case bsontype.Double:
		var value float64
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*s = FlexString(strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	default:
		return fmt.Errorf("cannot decode %s into FlexString", t)
	}
}

// MarshalBSONValue always writes a BSON string.
func (s FlexString) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(s))
}
