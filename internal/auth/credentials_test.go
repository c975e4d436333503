package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBasicCredentials(t *testing.T) {
	blob, ok := ExtractBasicCredentials("Basic dXNlcjpwYXNz")
	assert.True(t, ok)
	assert.Equal(t, "dXNlcjpwYXNz", blob)

	for _, header := range []string{"", "Bearer xyz", "basic dXNlcjpwYXNz", "Basic", "BasicdXNlcjpwYXNz"} {
		_, ok := ExtractBasicCredentials(header)
		assert.False(t, ok, header)
	}
}

func TestDecodeBasicCredentials(t *testing.T) {
	decoded, ok := DecodeBasicCredentials("dXNlcjpwYXNz")
	assert.True(t, ok)
	assert.Equal(t, "user:pass", decoded)

	_, ok = DecodeBasicCredentials("")
	assert.False(t, ok)

	_, ok = DecodeBasicCredentials("not base64!")
	assert.False(t, ok)

	_, ok = DecodeBasicCredentials(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, ':'}))
	assert.False(t, ok, "invalid utf-8")
}

func TestSplitCredentials(t *testing.T) {
	email, password, ok := SplitCredentials("user:pass")
	assert.True(t, ok)
	assert.Equal(t, "user", email)
	assert.Equal(t, "pass", password)

	email, password, ok = SplitCredentials("bob@example.com:pa:ss:word")
	assert.True(t, ok)
	assert.Equal(t, "bob@example.com", email)
	assert.Equal(t, "pa:ss:word", password)

	_, _, ok = SplitCredentials("nocolon")
	assert.False(t, ok)
}

func TestSessionCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionCookie(r, "session_id")
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: "session_id", Value: "abc"})
	value, ok := SessionCookie(r, "session_id")
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	_, ok = SessionCookie(r, "other")
	assert.False(t, ok)

	_, ok = SessionCookie(nil, "session_id")
	assert.False(t, ok)
}
