package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"STYLEMATE_BACK-END/internal/middleware"
)

func jsonDecode(rec *httptest.ResponseRecorder, out any) error {
	return json.NewDecoder(rec.Body).Decode(out)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}
