package schema

import (
	"fmt"
	"strings"
)

// Status represents document review status
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid returns true for a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus parses status text, an empty value yields StatusPending
func ParseStatus(text string) (Status, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return StatusPending, nil
	}
	status := Status(text)
	if !status.Valid() {
		return "", fmt.Errorf("unsupported status: %q", text)
	}
	return status, nil
}
