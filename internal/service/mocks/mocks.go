package mocks

import (
	"context"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) SetUserMembership(ctx context.Context, id int64, isMember bool) error {
	args := m.Called(ctx, id, isMember)
	return args.Error(0)
}

func (m *MockStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockStore) GetSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockStore) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) UpsertJoinRequest(ctx context.Context, req *model.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockStore) GetJoinRequest(ctx context.Context, userID, chatID int64) (*model.JoinRequest, error) {
	args := m.Called(ctx, userID, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JoinRequest), args.Error(1)
}

func (m *MockStore) SetJoinRequestStatus(ctx context.Context, userID, chatID int64, status model.JoinRequestStatus, processedBy *int64) error {
	args := m.Called(ctx, userID, chatID, status, processedBy)
	return args.Error(0)
}

func (m *MockStore) ListPendingJoinRequests(ctx context.Context) ([]*model.JoinRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JoinRequest), args.Error(1)
}

func (m *MockStore) ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Favorite), args.Error(1)
}

func (m *MockStore) AddFavorite(ctx context.Context, userID int64, stockCode string) error {
	args := m.Called(ctx, userID, stockCode)
	return args.Error(0)
}

func (m *MockStore) RemoveFavorite(ctx context.Context, userID int64, stockCode string) error {
	args := m.Called(ctx, userID, stockCode)
	return args.Error(0)
}

func (m *MockStore) ClearFavorites(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessage(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockMessenger) SendMessageWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	args := m.Called(chatID, text, markup)
	return args.Error(0)
}

func (m *MockMessenger) AnswerCallback(callbackID, text string) error {
	args := m.Called(callbackID, text)
	return args.Error(0)
}

func (m *MockMessenger) GetChat(chatID int64) (tgbotapi.Chat, error) {
	args := m.Called(chatID)
	return args.Get(0).(tgbotapi.Chat), args.Error(1)
}

func (m *MockMessenger) CreateInviteLink(chatID int64, name string) (tgbotapi.ChatInviteLink, error) {
	args := m.Called(chatID, name)
	return args.Get(0).(tgbotapi.ChatInviteLink), args.Error(1)
}

func (m *MockMessenger) ApproveJoinRequest(chatID, userID int64) error {
	args := m.Called(chatID, userID)
	return args.Error(0)
}

func (m *MockMessenger) DeclineJoinRequest(chatID, userID int64) error {
	args := m.Called(chatID, userID)
	return args.Error(0)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Quote(symbol string) (*model.Quote, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockProvider) Depth(symbol string) (*model.Depth, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Depth), args.Error(1)
}

func (m *MockProvider) Fundamentals(symbol string) (*model.Fundamentals, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fundamentals), args.Error(1)
}

func (m *MockProvider) News(symbol string) ([]model.NewsItem, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsItem), args.Error(1)
}

func (m *MockProvider) Technical(symbol string) (*model.Technical, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Technical), args.Error(1)
}

func (m *MockProvider) VIOP(symbol string) (*model.VIOPContract, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VIOPContract), args.Error(1)
}

func (m *MockProvider) Summary() (*model.MarketSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketSummary), args.Error(1)
}
