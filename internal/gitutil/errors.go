package gitutil

import (
	"fmt"
	"strings"

	"github.com/samzong/gcm/internal/gitcmd"
)

// WrapGitError builds an error message that prefers git stderr output when present.
// The returned error matches kind with errors.Is as well as the underlying err.
func WrapGitError(kind error, action string, result gitcmd.Result, err error) error {
	errMsg := strings.TrimSpace(string(result.Stderr))
	if errMsg != "" {
		return fmt.Errorf("%w: %s: %s: %w", kind, action, errMsg, err)
	}
	return fmt.Errorf("%w: %s: %w", kind, action, err)
}
