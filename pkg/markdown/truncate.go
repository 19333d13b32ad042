package markdown

import (
	"fmt"
	"os"
)

const (
	truncateThreshold = 4096
	truncateKeep      = 512
)

// NoTruncateEnv disables output truncation when set to a non-empty value.
const NoTruncateEnv = "CORRECTOR_NO_TRUNCATE"

// Truncate bounds long captured output to a head+tail excerpt so diagnostics
// stay readable. Strings under the threshold pass through unchanged.
func Truncate(s string) string {
	if os.Getenv(NoTruncateEnv) != "" {
		return s
	}
	if len(s) < truncateThreshold {
		return s
	}
	return s[:truncateKeep] +
		fmt.Sprintf("\n…(%d truncated chars)…\n", len(s)-2*truncateKeep) +
		s[len(s)-truncateKeep:]
}
