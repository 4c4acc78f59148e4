package telegram

import (
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Gateway wraps the Bot API with the handful of calls the bot needs. Every
// call is a single outbound request; there is no retry or backoff, callers
// log and move on.
type Gateway struct {
	api *tgbotapi.BotAPI
}

func New(token string) (*Gateway, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is not configured")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize bot api")
	}

	logger.Logger().Info("Telegram bot authorized", zap.String("username", api.Self.UserName))
	return &Gateway{api: api}, nil
}

func (g *Gateway) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err := g.api.Send(msg)
	return err
}

func (g *Gateway) SendMessageWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = markup
	_, err := g.api.Send(msg)
	return err
}

func (g *Gateway) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := g.api.Send(edit)
	return err
}

func (g *Gateway) AnswerCallback(callbackID, text string) error {
	_, err := g.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func (g *Gateway) GetChat(chatID int64) (tgbotapi.Chat, error) {
	return g.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
}

func (g *Gateway) GetChatMember(chatID, userID int64) (tgbotapi.ChatMember, error) {
	return g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
}

// CreateInviteLink creates a join-request link: users who follow it end up
// as chat_join_request updates on the webhook instead of joining directly.
func (g *Gateway) CreateInviteLink(chatID int64, name string) (tgbotapi.ChatInviteLink, error) {
	var link tgbotapi.ChatInviteLink

	resp, err := g.api.Request(tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:         tgbotapi.ChatConfig{ChatID: chatID},
		Name:               name,
		CreatesJoinRequest: true,
	})
	if err != nil {
		return link, errors.Wrap(err, "createChatInviteLink failed")
	}
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return link, errors.Wrap(err, "failed to decode invite link")
	}
	return link, nil
}

func (g *Gateway) ApproveJoinRequest(chatID, userID int64) error {
	_, err := g.api.Request(tgbotapi.ApproveChatJoinRequestConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
		UserID:     userID,
	})
	return err
}

func (g *Gateway) DeclineJoinRequest(chatID, userID int64) error {
	_, err := g.api.Request(tgbotapi.DeclineChatJoinRequest{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
		UserID:     userID,
	})
	return err
}

// SetWebhook registers the public endpoint and opts in to the join-request
// and chat-member update kinds, which Telegram omits by default.
func (g *Gateway) SetWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return errors.Wrap(err, "invalid webhook url")
	}
	wh.AllowedUpdates = []string{"message", "callback_query", "chat_join_request", "chat_member"}
	_, err = g.api.Request(wh)
	return err
}
