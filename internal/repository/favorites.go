package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"

	"github.com/pkg/errors"
)

type favoriteRow struct {
	UserID    int64     `json:"user_id"`
	StockCode string    `json:"stock_code"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Repository) ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	var rows []favoriteRow
	q := eqFilter(map[string]string{"user_id": strconv.FormatInt(userID, 10)})
	q.Set("order", "created_at.desc")
	if err := r.do(ctx, http.MethodGet, "user_favorites", q, "", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]*model.Favorite, len(rows))
	for i, row := range rows {
		out[i] = &model.Favorite{UserID: row.UserID, StockCode: row.StockCode, CreatedAt: row.CreatedAt}
	}
	return out, nil
}

// AddFavorite inserts with ignore-duplicates so re-adding a symbol is a
// silent no-op rather than a conflict error.
func (r *Repository) AddFavorite(ctx context.Context, userID int64, stockCode string) error {
	q := url.Values{}
	q.Set("on_conflict", "user_id,stock_code")
	body := map[string]interface{}{
		"user_id":    userID,
		"stock_code": strings.ToUpper(stockCode),
		"created_at": time.Now().UTC(),
	}
	if err := r.do(ctx, http.MethodPost, "user_favorites", q, preferIgnoreDuplicates, body, nil); err != nil {
		return errors.Wrapf(err, "failed to add favorite %s", stockCode)
	}
	return nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID int64, stockCode string) error {
	q := eqFilter(map[string]string{
		"user_id":    strconv.FormatInt(userID, 10),
		"stock_code": strings.ToUpper(stockCode),
	})
	if err := r.do(ctx, http.MethodDelete, "user_favorites", q, "", nil, nil); err != nil {
		return errors.Wrapf(err, "failed to remove favorite %s", stockCode)
	}
	return nil
}

func (r *Repository) ClearFavorites(ctx context.Context, userID int64) error {
	q := eqFilter(map[string]string{"user_id": strconv.FormatInt(userID, 10)})
	if err := r.do(ctx, http.MethodDelete, "user_favorites", q, "", nil, nil); err != nil {
		return errors.Wrap(err, "failed to clear favorites")
	}
	return nil
}
