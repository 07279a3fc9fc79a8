package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// FlexibleID accepts a JSON number or a numeric string. Forms post select
// values as strings ("1"), API callers send numbers.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*id = 0
			return nil
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value != float64(uint64(value)) {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(uint64(value))
	return nil
}

func (id FlexibleID) Uint() uint {
	return uint(id)
}

// NullableID is an optional id in update bodies. A missing key leaves the
// column alone; null, 0 or "" clears it.
type NullableID struct {
	Set   bool
	Value FlexibleID
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	return n.Value.UnmarshalJSON(data)
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(uint(n.Value))
}

// IsZero reports an unset id so omitzero drops the key.
func (n NullableID) IsZero() bool {
	return !n.Set
}

// Ptr returns the id to store, nil for a cleared column.
func (n NullableID) Ptr() *uint {
	if n.Value == 0 {
		return nil
	}
	v := n.Value.Uint()
	return &v
}

func SetID(id uint) NullableID {
	return NullableID{Set: true, Value: FlexibleID(id)}
}

// ParseDate reads YYYY-MM-DD or RFC3339. Empty input yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	t = t.UTC()
	return &t, nil
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}
