package auth

import "strings"

const (
	pathSeparator = "/"
	wildcard      = "*"
)

// ExemptionList is an ordered set of path patterns that bypass authentication.
// A pattern ending in "*" matches every path starting with the text before it;
// any other pattern must match exactly. "/a" and "/a/" are treated alike.
type ExemptionList []string

// RequiresAuth reports whether path must be authenticated.
// An empty path always requires authentication.
func (l ExemptionList) RequiresAuth(path string) bool {
	if path == "" || len(l) == 0 {
		return true
	}

	normalized := withTrailingSeparator(path)
	for _, pattern := range l {
		if matchExemption(normalized, withTrailingSeparator(pattern)) {
			return false
		}
	}

	return true
}

func matchExemption(path, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, wildcard+pathSeparator); ok {
		return strings.HasPrefix(path, prefix)
	}

	return path == pattern
}

func withTrailingSeparator(s string) string {
	if strings.HasSuffix(s, pathSeparator) {
		return s
	}

	return s + pathSeparator
}
