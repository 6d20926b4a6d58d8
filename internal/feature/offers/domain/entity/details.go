package entity

import (
	"encoding/json"
	"fmt"
)

// DetailKey names one of the fixed product attributes.
type DetailKey string

const (
	DetailBrand     DetailKey = "BRAND"
	DetailSize      DetailKey = "SIZE"
	DetailCondition DetailKey = "CONDITION"
	DetailColor     DetailKey = "COLOR"
	DetailLocation  DetailKey = "LOCATION"
)

// DetailKeys is the order in which attributes always appear.
var DetailKeys = [5]DetailKey{DetailBrand, DetailSize, DetailCondition, DetailColor, DetailLocation}

// Detail is one key/value attribute. It encodes as a single-key object, e.g. {"BRAND":"Zara"}.
type Detail struct {
	Key   DetailKey
	Value string
}

// MarshalJSON implements json.Marshaler.
func (d Detail) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[DetailKey]string{d.Key: d.Value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Detail) UnmarshalJSON(b []byte) error {
	var m map[DetailKey]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("detail must have exactly one key, got %d", len(m))
	}
	for k, v := range m {
		d.Key, d.Value = k, v
	}
	return nil
}

// Details holds the five attributes in DetailKeys order. Consumers may index it positionally.
type Details [5]Detail

// NewDetails builds the attribute sequence; missing values are stored as empty strings.
func NewDetails(brand, size, condition, color, location string) Details {
	values := [5]string{brand, size, condition, color, location}
	var d Details
	for i, k := range DetailKeys {
		d[i] = Detail{Key: k, Value: values[i]}
	}
	return d
}

// Get returns the value stored under key.
func (d Details) Get(key DetailKey) string {
	for _, x := range d {
		if x.Key == key {
			return x.Value
		}
	}
	return ""
}
