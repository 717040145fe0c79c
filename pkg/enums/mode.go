package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode is the shape of data submitted for prediction: a literal numeric
// vector or raw file content.
type Mode uint8

const (
	ModeUnknown Mode = iota
	ModeValues
	ModeFile
)

var (
	modeName = map[uint8]string{
		0: "unknown",
		1: "values",
		2: "file",
	}

	modeValue = map[string]Mode{
		"unknown": ModeUnknown,
		"values":  ModeValues,
		"file":    ModeFile,
	}
)

// String allows Mode to implement fmt.Stringer
func (m Mode) String() string {
	return modeName[uint8(m)]
}

// EnumIndex returns the integer representation of the Mode.
func (m Mode) EnumIndex() uint8 {
	return uint8(m)
}

// MarshalJSON marshals the enum as a quoted json string
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON unmarshals a quoted json string to the enum value
func (m *Mode) UnmarshalJSON(data []byte) (err error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if *m, err = ParseMode(name); err != nil {
		return err
	}
	return nil
}

// ParseMode converts a string to a Mode, returns an error if the string is unknown.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	value, ok := modeValue[s]
	if !ok {
		return Mode(0), fmt.Errorf("%q is not a valid Mode", s)
	}
	return value, nil
}
