package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"STYLEMATE_BACK-END/internal/config"
	"STYLEMATE_BACK-END/internal/dto"
	"STYLEMATE_BACK-END/internal/suggest"
)

type fakeGateway struct {
	text  string
	err   error
	calls int
}

func (f *fakeGateway) Generate(ctx context.Context, event, clothesText string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func postSuggest(t *testing.T, h *SuggestHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/suggest", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Suggest(rec, req)
	return rec
}

func TestSuggestMissingFields(t *testing.T) {
	gw := &fakeGateway{}
	h := NewSuggestHandler(gw)

	for _, body := range []string{
		`{"event": "", "clothes": "jeans"}`,
		`{"event": "party", "clothes": ""}`,
		`{}`,
	} {
		rec := postSuggest(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
	assert.Zero(t, gw.calls)
}

func TestSuggestRuleBased(t *testing.T) {
	gw := &fakeGateway{}
	h := NewSuggestHandler(gw)

	rec := postSuggest(t, h, `{"event": "College fest", "clothes": "blue jeans, white t-shirt, sneakers"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.SuggestResponse](t, rec)
	assert.Equal(t, "rules", resp.Source)
	assert.Empty(t, resp.Notice)
	require.NotNil(t, resp.Suggestion)
	assert.Equal(t, "Casual: Jeans with t-shirt or hoodie. Use your white t-shirt, blue jeans.", resp.Suggestion.Outfit)
	assert.Contains(t, resp.Text, "Color Tip: Mix casual colors; earth tones for relaxed vibe. Detected: blue, white.")

	// The gateway is never consulted when AI isn't requested.
	assert.Zero(t, gw.calls)
}

func TestSuggestAISuccess(t *testing.T) {
	gw := &fakeGateway{text: "- Outfit: something bold"}
	h := NewSuggestHandler(gw)

	rec := postSuggest(t, h, `{"event": "party", "clothes": "red dress", "use_ai": true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.SuggestResponse](t, rec)
	assert.Equal(t, "ai", resp.Source)
	assert.Equal(t, "- Outfit: something bold", resp.Text)
	assert.Nil(t, resp.Suggestion)
	assert.Empty(t, resp.Notice)
	assert.Equal(t, 1, gw.calls)
}

func TestSuggestAIFallback(t *testing.T) {
	gw := &fakeGateway{err: errors.New("boom")}
	h := NewSuggestHandler(gw)

	rec := postSuggest(t, h, `{"event": "party", "clothes": "red dress", "use_ai": true}`)

	// Gateway failure is never an error page.
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.SuggestResponse](t, rec)
	assert.Equal(t, "rules", resp.Source)
	assert.Equal(t, "AI unavailable — using rule-based suggestions.", resp.Notice)
	require.NotNil(t, resp.Suggestion)
	assert.Equal(t, "Fun and vibrant: Stylish top with jeans.", resp.Suggestion.Outfit)
	assert.Equal(t, 1, gw.calls)
}

func TestSuggestAIUnconfiguredFallback(t *testing.T) {
	// The real unconfigured gateway, not a fake: no key means no network.
	h := NewSuggestHandler(suggest.NewGateway(&config.OpenAIConfig{}))

	rec := postSuggest(t, h, `{"event": "wedding", "clothes": "dress", "use_ai": true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.SuggestResponse](t, rec)
	assert.Equal(t, "rules", resp.Source)
	assert.Equal(t, "AI unavailable — using rule-based suggestions.", resp.Notice)
}
