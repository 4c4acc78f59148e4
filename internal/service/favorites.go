package service

import (
	"context"
	"strings"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// parseSymbols turns "thyao, akbnk,,THYAO" into {"THYAO","AKBNK"}.
func parseSymbols(raw string) []string {
	symbols := lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
		s = strings.ToUpper(strings.TrimSpace(s))
		return s, s != ""
	})
	return lo.Uniq(symbols)
}

func (d *Dispatcher) listFavorites(ctx context.Context, userID, chatID int64) {
	favorites, err := d.store.ListFavorites(ctx, userID)
	if err != nil {
		logger.Logger().Error("failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		favorites = nil
	}
	if len(favorites) == 0 {
		d.reply(chatID, favoritesEmptyMessage)
		return
	}

	codes := lo.Map(favorites, func(f *model.Favorite, _ int) string { return f.StockCode })
	d.reply(chatID, "⭐ <b>Favori Hisseleriniz:</b>\n\n"+strings.Join(codes, ", "))
}

func (d *Dispatcher) addFavorites(ctx context.Context, userID, chatID int64, symbols []string) {
	if len(symbols) == 0 {
		d.reply(chatID, favoriteAddFailedMessage)
		return
	}
	for _, symbol := range symbols {
		if err := d.store.AddFavorite(ctx, userID, symbol); err != nil {
			logger.Logger().Error("failed to add favorite",
				zap.Int64("user_id", userID), zap.String("symbol", symbol), zap.Error(err))
			d.reply(chatID, favoriteAddFailedMessage)
			return
		}
	}
	d.reply(chatID, "✅ "+strings.Join(symbols, ", ")+" favorilere eklendi.")
}

func (d *Dispatcher) removeFavorites(ctx context.Context, userID, chatID int64, symbols []string) {
	if len(symbols) == 0 {
		d.reply(chatID, favoriteRemoveFailedMsg)
		return
	}
	for _, symbol := range symbols {
		if err := d.store.RemoveFavorite(ctx, userID, symbol); err != nil {
			logger.Logger().Error("failed to remove favorite",
				zap.Int64("user_id", userID), zap.String("symbol", symbol), zap.Error(err))
			d.reply(chatID, favoriteRemoveFailedMsg)
			return
		}
	}
	d.reply(chatID, "✅ "+strings.Join(symbols, ", ")+" favorilerden çıkarıldı.")
}

func (d *Dispatcher) clearFavorites(ctx context.Context, userID, chatID int64) {
	if err := d.store.ClearFavorites(ctx, userID); err != nil {
		logger.Logger().Error("failed to clear favorites", zap.Int64("user_id", userID), zap.Error(err))
		d.reply(chatID, favoritesClearFailedMsg)
		return
	}
	d.reply(chatID, favoritesClearedMessage)
}
