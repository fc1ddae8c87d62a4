package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a UUID with an optional prefix
func GenerateUUID(prefix string) string {
	id := uuid.New()
	if prefix != "" {
		return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(id.String(), "-", ""))
	}
	return id.String()
}

// GenerateSubmissionID generates a submission ID with "inv" prefix
func GenerateSubmissionID() string {
	return GenerateUUID("inv")
}

// IsSubmissionID reports whether id has the shape produced by GenerateSubmissionID.
func IsSubmissionID(id string) bool {
	raw, ok := strings.CutPrefix(id, "inv_")
	if !ok || len(raw) != 32 {
		return false
	}
	_, err := uuid.Parse(raw)
	return err == nil
}
