package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-assistant-backend/internal/config"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/logger"
)

func newTestGateway(t *testing.T, baseURL string) *AfricasTalkingGateway {
	t.Helper()
	gateway, err := NewAfricasTalkingGateway(&config.Config{
		ATUsername: "sandbox",
		ATAPIKey:   "test-key",
		ATSender:   "12345",
		ATBaseURL:  baseURL,
	}, logger.New())
	require.NoError(t, err)
	return gateway
}

func TestSendPostsFormToMessagingEndpoint(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apiKey")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL)
	err := gateway.Send(context.Background(), "hello", []string{"+254700000001", "+254700000002"})

	require.NoError(t, err)
	assert.Equal(t, "/version1/messaging", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, []string{"sandbox"}, gotForm["username"])
	assert.Equal(t, []string{"+254700000001,+254700000002"}, gotForm["to"])
	assert.Equal(t, []string{"hello"}, gotForm["message"])
	assert.Equal(t, []string{"12345"}, gotForm["from"])
}

func TestSendRejectsEmptyRecipients(t *testing.T) {
	gateway := newTestGateway(t, "http://localhost:0")

	err := gateway.Send(context.Background(), "hello", nil)

	assert.ErrorIs(t, err, apperrors.ErrNoRecipients)
}

func TestSendReturnsExternalServiceErrorOnFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL)
	err := gateway.Send(context.Background(), "hello", []string{"+254700000001"})

	assert.True(t, apperrors.IsExternalService(err))
}

func TestNewGatewayRequiresCredentials(t *testing.T) {
	_, err := NewAfricasTalkingGateway(&config.Config{}, logger.New())

	assert.ErrorIs(t, err, apperrors.ErrGatewayConfigMissing)
}
