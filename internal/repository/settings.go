package repository

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

type settingRow struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var rows []settingRow
	q := eqFilter(map[string]string{"key": key})
	if err := r.do(ctx, http.MethodGet, "settings", q, "", nil, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}
	return rows[0].Value, nil
}

func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	q := url.Values{}
	q.Set("on_conflict", "key")
	body := map[string]interface{}{
		"key":        key,
		"value":      value,
		"updated_at": time.Now().UTC(),
	}
	if err := r.do(ctx, http.MethodPost, "settings", q, preferMergeDuplicates, body, nil); err != nil {
		return errors.Wrapf(err, "failed to store setting %q", key)
	}
	return nil
}
