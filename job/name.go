package job

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jobforge/jobforge/internal/errors"
)

// reservedNames are device names on some filesystems and can never be
// used as directory names, so they are rejected as identifiers outright.
var reservedNames = func() map[string]struct{} {
	names := []string{"con", "nul", "prn"}
	for i := 1; i <= 9; i++ {
		names = append(names, fmt.Sprintf("com%d", i), fmt.Sprintf("lpt%d", i))
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}()

var disallowedRuns = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeID normalizes a declared identifier into a form that is safe as
// a job name and as a directory name. Reserved device names fail, every
// run of disallowed characters collapses into a single dash. The result
// is stable under repeated application.
func SanitizeID(raw string) (string, error) {
	if raw == "" {
		return raw, nil
	}
	if _, ok := reservedNames[strings.ToLower(raw)]; ok {
		return "", errors.InvalidArgument(EntityJob,
			fmt.Sprintf("identifier %q is a reserved device name", raw))
	}
	return disallowedRuns.ReplaceAllString(raw, "-"), nil
}
