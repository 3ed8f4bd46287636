package logger

import (
	"fmt"
	"strings"
)

// Type selects the slog handler used to encode records.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType maps "text" or "json" to a Type. The empty string is TypeText.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, fmt.Errorf("logger: unknown type %q", s)
}
