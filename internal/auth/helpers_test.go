package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/thejerf/abtime"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newManualClock returns a clock that only moves when advanced.
func newManualClock() *abtime.ManualTime {
	return abtime.NewManualAtTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func requestWithCookie(path, name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	return r
}
