package store

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a prefixed random identifier, e.g. "profile_<uuid>".
// Uniqueness rides on the uuid birthday bound and is not re-checked.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}

const (
	ProfilePrefix    = "profile"
	AssessmentPrefix = "assessment"
	GuidePrefix      = "guide"
)
