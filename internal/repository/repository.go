package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

// Config points at the hosted table store's REST interface. The service key
// doubles as both the apikey header and the bearer token.
type Config struct {
	URL        string `yaml:"url"`
	ServiceKey string `yaml:"serviceKey"`
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("store url is not configured")
	}
	if c.ServiceKey == "" {
		return errors.New("store service key is not configured")
	}
	return nil
}

// Repository is the persistence gateway: every call is one remote request
// against the table store, key-filtered with col=eq.value query parameters.
// Reads map a miss to ErrNotFound or an empty slice; writes always surface
// their error to the caller.
type Repository struct {
	baseURL string
	key     string
	client  *http.Client
}

func New(cfg Config) (*Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Logger().Info("Table store client initialized", zap.String("url", cfg.URL))

	return &Repository{
		baseURL: cfg.URL,
		key:     cfg.ServiceKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

const (
	preferMergeDuplicates  = "resolution=merge-duplicates,return=representation"
	preferIgnoreDuplicates = "resolution=ignore-duplicates"
	preferRepresentation   = "return=representation"
)

func (r *Repository) do(ctx context.Context, method, table string, query url.Values, prefer string, body, out interface{}) error {
	u := fmt.Sprintf("%s/rest/v1/%s", r.baseURL, table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s payload", table)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build store request")
	}
	req.Header.Set("apikey", r.key)
	req.Header.Set("Authorization", "Bearer "+r.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "store %s %s failed", method, table)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("store %s %s returned %d: %s", method, table, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response", table)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", table)
	}
	return nil
}

func eqFilter(pairs map[string]string) url.Values {
	q := url.Values{}
	for col, v := range pairs {
		q.Set(col, "eq."+v)
	}
	return q
}
