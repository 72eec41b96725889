package util

import (
	"github.com/oklog/ulid/v2"
)

// GenerateMomoOrderID returns a time-ordered order ID.
// IDs generated within the same millisecond are still strictly increasing.
func GenerateMomoOrderID() string {
	return ulid.Make().String()
}
