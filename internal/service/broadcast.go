package service

import (
	"context"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/metrics"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	"go.uber.org/zap"
)

// DefaultBroadcastDelay spaces sends out enough to stay under the Bot API
// rate limit for bulk messaging.
const DefaultBroadcastDelay = 50 * time.Millisecond

type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// Broadcaster delivers an announcement to every known user, one send at a
// time. A failed recipient is counted and skipped; there is no rollback and
// no retry.
type Broadcaster struct {
	store Store
	tg    Messenger
	delay time.Duration
}

func NewBroadcaster(store Store, tg Messenger, delay time.Duration) *Broadcaster {
	return &Broadcaster{store: store, tg: tg, delay: delay}
}

func (b *Broadcaster) Announce(ctx context.Context, message string) (*BroadcastResult, error) {
	users, err := b.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Named("broadcast")
	result := &BroadcastResult{Total: len(users)}

	for _, user := range users {
		if err := b.tg.SendMessage(user.ID, broadcastMessagePrefix+message); err != nil {
			result.Failed++
			metrics.BroadcastSendsTotal.WithLabelValues("failed").Inc()
			log.Error("broadcast send failed", zap.Int64("user_id", user.ID), zap.Error(err))
		} else {
			result.Sent++
			metrics.BroadcastSendsTotal.WithLabelValues("sent").Inc()
		}

		if b.delay > 0 {
			time.Sleep(b.delay)
		}
	}

	log.Info("broadcast finished",
		zap.Int("sent", result.Sent), zap.Int("failed", result.Failed), zap.Int("total", result.Total))
	return result, nil
}
