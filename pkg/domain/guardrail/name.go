package guardrail

import (
	"strings"

	"github.com/google/uuid"
)

// NewName appends n hex characters of a random UUID to prefix.
func NewName(prefix string) string {
	return NewNameN(prefix, 8)
}

func NewNameN(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return prefix + "-" + hex[:n]
}
