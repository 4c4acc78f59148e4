package repository

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"

	"github.com/pkg/errors"
)

type userRow struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsMember  bool      `json:"is_member"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u userRow) toModel() *model.User {
	return &model.User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsMember:  u.IsMember,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *Repository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var rows []userRow
	q := eqFilter(map[string]string{"id": strconv.FormatInt(id, 10)})
	if err := r.do(ctx, http.MethodGet, "users", q, "", nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].toModel(), nil
}

// UpsertUser creates the user on first contact and refreshes the display
// fields on every later one. The membership flag is never touched here: a
// re-run /start must not demote a member.
func (r *Repository) UpsertUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()

	existing, err := r.GetUser(ctx, user.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		q := eqFilter(map[string]string{"id": strconv.FormatInt(user.ID, 10)})
		var rows []userRow
		patch := map[string]interface{}{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"updated_at": now,
		}
		if err := r.do(ctx, http.MethodPatch, "users", q, preferRepresentation, patch, &rows); err != nil {
			return nil, errors.Wrap(err, "failed to update user")
		}
		if len(rows) == 0 {
			return existing, nil
		}
		return rows[0].toModel(), nil
	}

	var rows []userRow
	insert := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_member":  false,
		"created_at": now,
		"updated_at": now,
	}
	if err := r.do(ctx, http.MethodPost, "users", nil, preferRepresentation, insert, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	if len(rows) == 0 {
		return nil, errors.New("store returned no row for created user")
	}
	return rows[0].toModel(), nil
}

func (r *Repository) SetUserMembership(ctx context.Context, id int64, isMember bool) error {
	q := eqFilter(map[string]string{"id": strconv.FormatInt(id, 10)})
	patch := map[string]interface{}{
		"is_member":  isMember,
		"updated_at": time.Now().UTC(),
	}
	if err := r.do(ctx, http.MethodPatch, "users", q, "", patch, nil); err != nil {
		return errors.Wrap(err, "failed to update membership")
	}
	return nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*model.User, error) {
	var rows []userRow
	query := eqFilter(nil)
	query.Set("order", "created_at.desc")
	if err := r.do(ctx, http.MethodGet, "users", query, "", nil, &rows); err != nil {
		return nil, err
	}
	users := make([]*model.User, len(rows))
	for i, row := range rows {
		users[i] = row.toModel()
	}
	return users, nil
}
