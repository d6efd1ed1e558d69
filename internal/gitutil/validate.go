package gitutil

import (
	"fmt"
	"strings"
)

// ValidateIdent checks a user.name or user.email value the way
// git does before it stamps a commit with it.
func ValidateIdent(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is empty", key)
	}
	for _, ch := range []string{"<", ">", "\n"} {
		if strings.Contains(value, ch) {
			return fmt.Errorf("%s contains invalid character %q: %s", key, ch, value)
		}
	}
	return nil
}
