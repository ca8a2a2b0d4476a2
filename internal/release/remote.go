package release

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoRemote is returned when no remote URL belongs to the configured
// group.
var ErrNoRemote = errors.New("no matching git remote")

// PushURL picks the first remote from `git remote -v` output whose URL
// contains group and replaces its credentials with token.
func PushURL(remotes, group, token string) (string, error) {
	for _, line := range strings.Split(remotes, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.Contains(fields[1], group) {
			continue
		}
		if !strings.HasPrefix(fields[1], "https://") && !strings.HasPrefix(fields[1], "http://") {
			return "", fmt.Errorf("remote %q is not an http(s) URL, token push needs one", fields[0])
		}
		u, err := url.Parse(fields[1])
		if err != nil {
			return "", fmt.Errorf("parsing remote %q: %w", fields[0], err)
		}
		u.User = url.User(token)
		return u.String(), nil
	}
	return "", fmt.Errorf("%w: none contains %q", ErrNoRemote, group)
}
