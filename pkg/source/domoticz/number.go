package domoticz

import (
	"bytes"
	"fmt"
	"strconv"
)

// Number is a float that domoticz sends either as JSON number or as string.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		n.Valid = false
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", string(data), err)
	}
	n.Value = f
	n.Valid = true
	return nil
}
