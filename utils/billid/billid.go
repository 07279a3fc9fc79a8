// Package billid generates sale bill identifiers of the form
// BILL-<unix millis>-<9 lowercase alphanumerics>.
package billid

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Prefix     = "BILL"
	suffixSize = 9
)

// New builds a bill id for the given instant. The random suffix keeps ids
// distinct when several sales land in the same millisecond.
func New(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixSize]
	return Prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
