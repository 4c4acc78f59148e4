package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWebhookRouter(store *mocks.MockStore, tg *mocks.MockMessenger, provider *mocks.MockProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	dispatcher := service.NewDispatcher(store, tg, provider)
	NewWebhookRoutes(router.Group("/api"), dispatcher, HealthInfo{BotConfigured: true, StoreConfigured: true})
	return router
}

func TestWebhook_HandleUpdate(t *testing.T) {
	t.Run("Valid update is acknowledged", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		provider := &mocks.MockProvider{}
		router := newWebhookRouter(store, tg, provider)

		store.On("GetUser", mock.Anything, int64(10)).
			Return(&model.User{ID: 10, IsMember: true}, nil)
		tg.On("SendMessage", int64(10), mock.AnythingOfType("string")).Return(nil)

		body := []byte(`{"update_id":1,"message":{"message_id":5,"from":{"id":10},"chat":{"id":10},"text":"hello"}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("Unknown payload kinds are still acknowledged", func(t *testing.T) {
		router := newWebhookRouter(&mocks.MockStore{}, &mocks.MockMessenger{}, &mocks.MockProvider{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader([]byte(`{"update_id":2}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("Malformed body is a server error", func(t *testing.T) {
		router := newWebhookRouter(&mocks.MockStore{}, &mocks.MockMessenger{}, &mocks.MockProvider{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader([]byte(`{not json`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("Health endpoint reports running", func(t *testing.T) {
		router := newWebhookRouter(&mocks.MockStore{}, &mocks.MockMessenger{}, &mocks.MockProvider{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/webhook", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "running")
		assert.Contains(t, w.Body.String(), `"bot_configured":true`)
	})
}
