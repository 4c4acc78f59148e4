package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"

	"github.com/pkg/errors"
)

type joinRequestRow struct {
	UserID      int64      `json:"user_id"`
	ChatID      int64      `json:"chat_id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Bio         string     `json:"bio"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at"`
	ProcessedBy *int64     `json:"processed_by"`
}

func (j joinRequestRow) toModel() *model.JoinRequest {
	return &model.JoinRequest{
		UserID:      j.UserID,
		ChatID:      j.ChatID,
		Username:    j.Username,
		FirstName:   j.FirstName,
		LastName:    j.LastName,
		Bio:         j.Bio,
		Status:      model.JoinRequestStatus(j.Status),
		RequestedAt: j.RequestedAt,
		ProcessedAt: j.ProcessedAt,
		ProcessedBy: j.ProcessedBy,
	}
}

func joinRequestFilter(userID, chatID int64) url.Values {
	return eqFilter(map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"chat_id": strconv.FormatInt(chatID, 10),
	})
}

// UpsertJoinRequest records a pending join request; the (user_id, chat_id)
// conflict target keeps the invariant of one record per pair.
func (r *Repository) UpsertJoinRequest(ctx context.Context, req *model.JoinRequest) error {
	q := url.Values{}
	q.Set("on_conflict", "user_id,chat_id")
	body := map[string]interface{}{
		"user_id":      req.UserID,
		"chat_id":      req.ChatID,
		"username":     req.Username,
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"bio":          req.Bio,
		"status":       string(model.JoinRequestPending),
		"requested_at": time.Now().UTC(),
	}
	if err := r.do(ctx, http.MethodPost, "join_requests", q, preferMergeDuplicates, body, nil); err != nil {
		return errors.Wrap(err, "failed to store join request")
	}
	return nil
}

func (r *Repository) GetJoinRequest(ctx context.Context, userID, chatID int64) (*model.JoinRequest, error) {
	var rows []joinRequestRow
	if err := r.do(ctx, http.MethodGet, "join_requests", joinRequestFilter(userID, chatID), "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *Repository) SetJoinRequestStatus(ctx context.Context, userID, chatID int64, status model.JoinRequestStatus, processedBy *int64) error {
	patch := map[string]interface{}{
		"status":       string(status),
		"processed_at": time.Now().UTC(),
		"processed_by": processedBy,
	}
	if err := r.do(ctx, http.MethodPatch, "join_requests", joinRequestFilter(userID, chatID), "", patch, nil); err != nil {
		return errors.Wrap(err, "failed to update join request status")
	}
	return nil
}

func (r *Repository) ListPendingJoinRequests(ctx context.Context) ([]*model.JoinRequest, error) {
	var rows []joinRequestRow
	q := eqFilter(map[string]string{"status": string(model.JoinRequestPending)})
	q.Set("order", "requested_at.desc")
	if err := r.do(ctx, http.MethodGet, "join_requests", q, "", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]*model.JoinRequest, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
