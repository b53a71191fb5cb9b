// Package strutil holds small string helpers shared by handlers and connectors.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
)

const maxFileNameLength = 100

// SanitizeFileName reduces name to a safe single path segment.
// Characters outside [A-Za-z0-9._-] become underscores and leading dots are dropped.
// fallback is returned when nothing usable remains.
func SanitizeFileName(name, fallback string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	if len(out) > maxFileNameLength {
		out = out[len(out)-maxFileNameLength:]
	}
	if strings.Trim(out, "_") == "" {
		return fallback
	}
	return out
}

// ParseOptionalUint parses s as an unsigned ID. An empty s yields nil.
func ParseOptionalUint(s string) (*uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	u := uint(v)
	return &u, nil
}

// ParseUint parses a required unsigned ID.
func ParseUint(s string) (uint, error) {
	v, err := ParseOptionalUint(s)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("missing integer")
	}
	return *v, nil
}
