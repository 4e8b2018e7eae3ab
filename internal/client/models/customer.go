package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Customer is a read-only customer record as served by the backend.
type Customer struct {
	CustomerID FlexString `json:"customerId"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Pincode    FlexString `json:"pincode"`
}

// FlexString decodes from either a JSON string or a JSON number. The
// backend is not consistent about identifier and postal code types.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Matches reports whether term occurs in the name or the address,
// ignoring case. An empty term matches every customer.
func (c Customer) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Address), term)
}
