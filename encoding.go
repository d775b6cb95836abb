// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the EDTF form.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(data []byte) error {
	return v.Parse(string(data))
}

// MarshalYAML implements yaml.Marshaler using the EDTF form.
func (v Value) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	return v.Parse(node.Value)
}

// MarshalText implements encoding.TextMarshaler using the EDTF form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	return d.Parse(string(data))
}

// MarshalYAML implements yaml.Marshaler using the EDTF form.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return d.Parse(node.Value)
}

// List is a list of EDTF values.
type List []Value

// Parse parses each element of vals, accumulating an error for every
// element that fails rather than stopping at the first. The list is only
// assigned if every element parses.
func (l *List) Parse(vals []string) error {
	var errs errors.M
	out := make(List, 0, len(vals))
	for _, val := range vals {
		var v Value
		if err := v.Parse(val); err != nil {
			errs.Append(err)
			continue
		}
		out = append(out, v)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*l = out
	return nil
}

// Strings returns the EDTF form of each element.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = v.String()
	}
	return out
}

// Contains reports whether the list contains the value.
func (l List) Contains(v Value) bool {
	for _, lv := range l {
		if lv == v {
			return true
		}
	}
	return false
}

// MarshalYAML implements yaml.Marshaler as a sequence of EDTF forms.
func (l List) MarshalYAML() (any, error) {
	return l.Strings(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	var vals []string
	if err := node.Decode(&vals); err != nil {
		return err
	}
	return l.Parse(vals)
}
