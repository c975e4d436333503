package auth

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	// HeaderAuthorization carries Basic credentials.
	HeaderAuthorization = "Authorization"

	basicScheme = "Basic "
)

// AuthorizationHeader returns the raw Authorization header, or "" when absent.
func AuthorizationHeader(r *http.Request) string {
	if r == nil {
		return ""
	}

	return r.Header.Get(HeaderAuthorization)
}

// ExtractBasicCredentials returns the base64 part of a Basic Authorization header.
// The scheme is matched case-sensitively and must be followed by exactly one space.
func ExtractBasicCredentials(header string) (string, bool) {
	if !strings.HasPrefix(header, basicScheme) {
		return "", false
	}

	_, blob, _ := strings.Cut(header, " ")

	return blob, true
}

// DecodeBasicCredentials decodes the base64 blob of a Basic header into UTF-8 text.
func DecodeBasicCredentials(blob string) (string, bool) {
	if blob == "" {
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || !utf8.Valid(decoded) {
		return "", false
	}

	return string(decoded), true
}

// SplitCredentials splits "email:password" on the first colon, so passwords may contain colons.
func SplitCredentials(decoded string) (email, password string, ok bool) {
	return strings.Cut(decoded, ":")
}

// SessionCookie returns the value of the named cookie. Empty values count as absent.
func SessionCookie(r *http.Request, name string) (string, bool) {
	if r == nil || name == "" {
		return "", false
	}

	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
