package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/repository"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func joinRequestFromUpdate(req *tgbotapi.ChatJoinRequest) *model.JoinRequest {
	return &model.JoinRequest{
		UserID:    req.From.ID,
		ChatID:    req.Chat.ID,
		Username:  req.From.UserName,
		FirstName: req.From.FirstName,
		LastName:  req.From.LastName,
		Bio:       req.Bio,
		Status:    model.JoinRequestPending,
	}
}

func (d *Dispatcher) mainChannelID(ctx context.Context) (int64, bool) {
	raw, err := d.store.GetSetting(ctx, model.SettingMainChannelID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Logger().Error("failed to read main channel setting", zap.Error(err))
		}
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Logger().Error("main_channel_id is not numeric", zap.String("value", raw))
		return 0, false
	}
	return id, true
}

// ensureMember is the gate in front of every command except /start. A
// member passes straight through; a non-member with a recorded join request
// for the guarded channel is promoted on the spot; anyone else is redirected
// into the start flow and the original command is dropped.
func (d *Dispatcher) ensureMember(ctx context.Context, from *tgbotapi.User, chatID int64) bool {
	log := logger.Logger()

	user, err := d.store.GetUser(ctx, from.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error("failed to load user", zap.Int64("user_id", from.ID), zap.Error(err))
	}
	if user != nil && user.IsMember {
		return true
	}

	if channelID, ok := d.mainChannelID(ctx); ok {
		jr, err := d.store.GetJoinRequest(ctx, from.ID, channelID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			log.Error("failed to load join request", zap.Int64("user_id", from.ID), zap.Error(err))
		}
		if jr != nil {
			if err := d.store.SetUserMembership(ctx, from.ID, true); err != nil {
				log.Error("failed to grant membership", zap.Int64("user_id", from.ID), zap.Error(err))
			} else {
				log.Info("membership granted on existing join request",
					zap.Int64("user_id", from.ID), zap.Int64("chat_id", channelID))
			}
			return true
		}
	}

	d.handleStart(ctx, from, chatID)
	return false
}

func (d *Dispatcher) handleStart(ctx context.Context, from *tgbotapi.User, chatID int64) {
	log := logger.Logger()

	user, err := d.store.UpsertUser(ctx, &model.User{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	})
	if err != nil {
		log.Error("failed to upsert user", zap.Int64("user_id", from.ID), zap.Error(err))
	}

	channelID, ok := d.mainChannelID(ctx)
	if !ok {
		d.reply(chatID, notConfiguredMessage)
		return
	}

	// Members get the menu straight away, before any join-request lookup.
	if user != nil && user.IsMember {
		d.reply(chatID, welcomeMessage)
		return
	}

	jr, err := d.store.GetJoinRequest(ctx, from.ID, channelID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error("failed to load join request", zap.Int64("user_id", from.ID), zap.Error(err))
	}
	if jr != nil {
		if err := d.store.SetUserMembership(ctx, from.ID, true); err != nil {
			log.Error("failed to grant membership", zap.Int64("user_id", from.ID), zap.Error(err))
		} else {
			log.Info("membership granted on existing join request",
				zap.Int64("user_id", from.ID), zap.Int64("chat_id", channelID))
		}
		d.reply(chatID, welcomeMessage)
		return
	}

	d.replyWithMarkup(chatID, joinPromptMessage, joinKeyboard(d.inviteURL(ctx)))
}

// inviteURL prefers the stored join-request invite link and falls back to
// the legacy public channel handle.
func (d *Dispatcher) inviteURL(ctx context.Context) string {
	if link, err := d.store.GetSetting(ctx, model.SettingInviteLink); err == nil && link != "" {
		return link
	}
	if handle, err := d.store.GetSetting(ctx, model.SettingMainChannelLink); err == nil && handle != "" {
		return "https://t.me/" + strings.TrimPrefix(handle, "@")
	}
	return ""
}

func (d *Dispatcher) checkMembership(ctx context.Context, userID, chatID int64) {
	log := logger.Logger()

	channelID, ok := d.mainChannelID(ctx)
	if !ok {
		d.reply(chatID, channelNotConfiguredMsg)
		return
	}

	jr, err := d.store.GetJoinRequest(ctx, userID, channelID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error("failed to load join request", zap.Int64("user_id", userID), zap.Error(err))
	}
	if jr == nil {
		d.reply(chatID, noJoinRequestMessage)
		return
	}

	if err := d.store.SetUserMembership(ctx, userID, true); err != nil {
		log.Error("failed to grant membership", zap.Int64("user_id", userID), zap.Error(err))
	} else {
		log.Info("membership granted on membership check",
			zap.Int64("user_id", userID), zap.Int64("chat_id", channelID))
	}
	d.reply(chatID, welcomeMessage)
}
