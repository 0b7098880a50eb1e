package reference

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	outputPrefix    = "OUT"
	receptionPrefix = "RCP"
)

// GenerateOutput returns a new human-readable output reference,
// e.g. "OUT-240131-a3f29c".
func GenerateOutput(now time.Time) string {
	return generate(outputPrefix, now)
}

// GenerateChild derives the reference of a partial-fulfillment child from
// its parent: "OUT-240131-a3f29c" -> "OUT-240131-a3f29c/1",
// "OUT-240131-a3f29c/1" -> "OUT-240131-a3f29c/2".
func GenerateChild(parentRef string) string {
	base := parentRef
	gen := 0
	if idx := strings.LastIndex(parentRef, "/"); idx >= 0 {
		base = parentRef[:idx]
		fmt.Sscanf(parentRef[idx+1:], "%d", &gen)
	}
	return fmt.Sprintf("%s/%d", base, gen+1)
}

// GenerateReception returns a new reception reference.
func GenerateReception(now time.Time) string {
	return generate(receptionPrefix, now)
}

// GenerateBarcode returns a new scannable barcode value.
func GenerateBarcode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
}

func generate(prefix string, now time.Time) string {
	entropy := uuid.NewString()[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("060102"), entropy)
}
