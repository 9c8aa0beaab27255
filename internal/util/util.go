package util

import (
	"github.com/google/uuid"
)

// NewRunID returns a unique id used to correlate the log lines of one invocation
func NewRunID() string {
	return uuid.New().String()
}
