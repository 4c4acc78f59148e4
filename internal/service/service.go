package service

import (
	"context"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Store is the persistence gateway contract. All durable state lives behind
// it; the services hold nothing between invocations.
type Store interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) (*model.User, error)
	SetUserMembership(ctx context.Context, id int64, isMember bool) error
	ListUsers(ctx context.Context) ([]*model.User, error)

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	UpsertJoinRequest(ctx context.Context, req *model.JoinRequest) error
	GetJoinRequest(ctx context.Context, userID, chatID int64) (*model.JoinRequest, error)
	SetJoinRequestStatus(ctx context.Context, userID, chatID int64, status model.JoinRequestStatus, processedBy *int64) error
	ListPendingJoinRequests(ctx context.Context) ([]*model.JoinRequest, error)

	ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error)
	AddFavorite(ctx context.Context, userID int64, stockCode string) error
	RemoveFavorite(ctx context.Context, userID int64, stockCode string) error
	ClearFavorites(ctx context.Context, userID int64) error
}

// Messenger is the outbound messaging gateway contract.
type Messenger interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(callbackID, text string) error
	GetChat(chatID int64) (tgbotapi.Chat, error)
	CreateInviteLink(chatID int64, name string) (tgbotapi.ChatInviteLink, error)
	ApproveJoinRequest(chatID, userID int64) error
	DeclineJoinRequest(chatID, userID int64) error
}
