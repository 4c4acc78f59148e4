package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/repository"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service/mocks"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminRouter(store *mocks.MockStore, tg *mocks.MockMessenger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	broadcaster := service.NewBroadcaster(store, tg, 0)
	NewAdminRoutes(router.Group("/api"), store, tg, broadcaster)
	return router
}

func TestAdmin_Announcement(t *testing.T) {
	t.Run("Reports per-recipient outcome", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		router := newAdminRouter(store, tg)

		store.On("ListUsers", mock.Anything).
			Return([]*model.User{{ID: 1}, {ID: 2}}, nil)
		tg.On("SendMessage", int64(1), mock.AnythingOfType("string")).Return(nil)
		tg.On("SendMessage", int64(2), mock.AnythingOfType("string")).
			Return(errors.New("blocked"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/announcement",
			bytes.NewReader([]byte(`{"message":"market closes early"}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sent":1,"failed":1,"total":2}`, w.Body.String())
	})

	t.Run("Empty message is rejected", func(t *testing.T) {
		router := newAdminRouter(&mocks.MockStore{}, &mocks.MockMessenger{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/announcement",
			bytes.NewReader([]byte(`{"message":""}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdmin_Settings(t *testing.T) {
	t.Run("Missing keys come back empty", func(t *testing.T) {
		store := &mocks.MockStore{}
		router := newAdminRouter(store, &mocks.MockMessenger{})

		store.On("GetSetting", mock.Anything, model.SettingMainChannelID).
			Return("-100999", nil)
		store.On("GetSetting", mock.Anything, model.SettingInviteLink).
			Return("", repository.ErrNotFound)
		store.On("GetSetting", mock.Anything, model.SettingMainChannelLink).
			Return("", repository.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"main_channel_id":"-100999","invite_link":"","main_channel_link":""}`, w.Body.String())
	})

	t.Run("Only provided keys are written", func(t *testing.T) {
		store := &mocks.MockStore{}
		router := newAdminRouter(store, &mocks.MockMessenger{})

		store.On("SetSetting", mock.Anything, model.SettingMainChannelID, "-100123").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/settings",
			bytes.NewReader([]byte(`{"main_channel_id":"-100123"}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		store.AssertNumberOfCalls(t, "SetSetting", 1)
	})
}

func TestAdmin_CreateInvite(t *testing.T) {
	t.Run("Unconfigured channel is a client error", func(t *testing.T) {
		store := &mocks.MockStore{}
		router := newAdminRouter(store, &mocks.MockMessenger{})

		store.On("GetSetting", mock.Anything, model.SettingMainChannelID).
			Return("", repository.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create-invite", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Inaccessible channel is a client error", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		router := newAdminRouter(store, tg)

		store.On("GetSetting", mock.Anything, model.SettingMainChannelID).
			Return("-100999", nil)
		tg.On("GetChat", int64(-100999)).
			Return(tgbotapi.Chat{}, errors.New("chat not found"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create-invite", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Bot kanala erişemiyor")
	})

	t.Run("Created link is persisted and returned", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		router := newAdminRouter(store, tg)

		store.On("GetSetting", mock.Anything, model.SettingMainChannelID).
			Return("-100999", nil)
		tg.On("GetChat", int64(-100999)).
			Return(tgbotapi.Chat{ID: -100999}, nil)
		tg.On("CreateInviteLink", int64(-100999), inviteLinkName).
			Return(tgbotapi.ChatInviteLink{InviteLink: "https://t.me/+abc", Name: inviteLinkName}, nil)
		store.On("SetSetting", mock.Anything, model.SettingInviteLink, "https://t.me/+abc").
			Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create-invite", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://t.me/+abc")
		store.AssertExpectations(t)
		tg.AssertExpectations(t)
	})
}

func TestAdmin_JoinRequests(t *testing.T) {
	t.Run("Approve resolves on telegram then updates the store", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		router := newAdminRouter(store, tg)

		store.On("GetJoinRequest", mock.Anything, int64(10), int64(-100999)).
			Return(&model.JoinRequest{UserID: 10, ChatID: -100999, Status: model.JoinRequestPending}, nil)
		tg.On("ApproveJoinRequest", int64(-100999), int64(10)).Return(nil)
		store.On("SetJoinRequestStatus", mock.Anything, int64(10), int64(-100999),
			model.JoinRequestApproved, mock.Anything).Return(nil)
		store.On("SetUserMembership", mock.Anything, int64(10), true).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/join-requests/10/approve",
			bytes.NewReader([]byte(`{"chat_id":-100999}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		store.AssertExpectations(t)
		tg.AssertExpectations(t)
	})

	t.Run("Decline leaves membership alone", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		router := newAdminRouter(store, tg)

		store.On("GetJoinRequest", mock.Anything, int64(10), int64(-100999)).
			Return(&model.JoinRequest{UserID: 10, ChatID: -100999, Status: model.JoinRequestPending}, nil)
		tg.On("DeclineJoinRequest", int64(-100999), int64(10)).Return(nil)
		store.On("SetJoinRequestStatus", mock.Anything, int64(10), int64(-100999),
			model.JoinRequestDeclined, mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/join-requests/10/decline",
			bytes.NewReader([]byte(`{"chat_id":-100999}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		store.AssertNotCalled(t, "SetUserMembership", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown join request is a 404", func(t *testing.T) {
		store := &mocks.MockStore{}
		router := newAdminRouter(store, &mocks.MockMessenger{})

		store.On("GetJoinRequest", mock.Anything, int64(10), int64(-100999)).
			Return(nil, repository.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/join-requests/10/approve",
			bytes.NewReader([]byte(`{"chat_id":-100999}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
