package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a JSONB array of strings. A nil list is stored as [].
// Values are written as text since lib/pq encodes []byte parameters as bytea.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan StringList: unsupported type")
	}

	var result []string
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	if result == nil {
		result = []string{}
	}
	*l = result
	return nil
}
