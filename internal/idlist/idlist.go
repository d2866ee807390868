// Package idlist holds the loosely typed id lists that clients send and that
// classschedule.members stores as JSONB.
package idlist

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// List is a list of ids kept in their textual form. It decodes from a JSON
// array of strings or numbers, a comma separated string ("5, 9,12") or a
// single number.
type List []string

func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(List, 0, len(raw))
		for _, item := range raw {
			s, err := scalar(item)
			if err != nil {
				return err
			}
			if s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Split(s)
		return nil
	default:
		s, err := scalar(data)
		if err != nil {
			return err
		}
		*l = List{s}
		return nil
	}
}

func scalar(raw json.RawMessage) (string, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("id must be a string or number, got %s", raw)
	}
	return strings.TrimSpace(s), nil
}

// Split breaks a comma separated string into trimmed, non-empty parts.
func Split(s string) List {
	parts := strings.Split(s, ",")
	out := make(List, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Ints converts every id to an int. The first id that is not a number is
// reported in the error.
func (l List) Ints() ([]int, error) {
	out := make([]int, 0, len(l))
	for _, s := range l {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// Value stores the list as a JSON text; lib/pq would send []byte as bytea.
func (l List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *List) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*l = List{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("idlist: unsupported scan type")
	}
	return l.UnmarshalJSON(data)
}
