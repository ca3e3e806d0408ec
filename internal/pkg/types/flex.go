package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString is a scalar that the API sends either as a JSON string or as a
// JSON number (e.g. confirmations, timeStamp, lastUpdated). It always holds
// the textual form; null decodes to the empty string.
type FlexString string

// MarshalJSON encodes the FlexString as a JSON string.
func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// UnmarshalJSON accepts a string, a number or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid flex string: %w", err)
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string must be a string or a number: %w", err)
	}

	*f = FlexString(n.String())
	return nil
}

// String returns the textual value.
func (f FlexString) String() string {
	return string(f)
}

// Int returns the value as an int64, or zero when it is not an integer.
func (f FlexString) Int() int64 {
	v, _ := strconv.ParseInt(string(f), 10, 64)
	return v
}
