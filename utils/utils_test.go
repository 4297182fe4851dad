package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/socialboost/vision/config"
	"github.com/socialboost/vision/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"
	t.Cleanup(func() { config.JWTSecret = "" })

	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	userID, err := UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestToken_RejectsForeignSignature(t *testing.T) {
	config.JWTSecret = "secret-a"
	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	config.JWTSecret = "secret-b"
	t.Cleanup(func() { config.JWTSecret = "" })

	_, err = UserIDFromToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	config.JWTSecret = ""

	_, err := GenerateToken("user-1")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	var log strings.Builder
	rec := httptest.NewRecorder()

	RespondError(rec, &log, "Cliente não encontrado", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Cliente não encontrado"}`, rec.Body.String())
	assert.Equal(t, "Cliente não encontrado;\n", log.String())
}

func TestCORSMiddleware(t *testing.T) {
	config.AllowedOrigin = "*"
	called := false
	h := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/analyze/link", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.True(t, called)
}

func TestDataURLPreviewStore(t *testing.T) {
	img := &models.ImageFile{Name: "x.png", ContentType: "image/png", Data: []byte("abc")}

	url, err := DataURLPreviewStore{}.PreviewURL(context.Background(), img)

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,YWJj", url)
}

func TestSendEmail_DisabledWithoutKey(t *testing.T) {
	config.SendGridAPIKey = ""

	err := SendGridMailer{}.SendEmail("Ana", "ana@example.com", "Oi", "texto", "<p>texto</p>")

	assert.ErrorIs(t, err, ErrEmailDisabled)
}
