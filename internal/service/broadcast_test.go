package service

import (
	"context"
	"testing"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service/mocks"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBroadcaster_Announce(t *testing.T) {
	users := []*model.User{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("One failed recipient does not stop the run", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		store.On("ListUsers", mock.Anything).Return(users, nil)

		tg.On("SendMessage", int64(1), broadcastMessagePrefix+"hello").Return(nil)
		tg.On("SendMessage", int64(2), broadcastMessagePrefix+"hello").
			Return(errors.New("blocked by user"))
		tg.On("SendMessage", int64(3), broadcastMessagePrefix+"hello").Return(nil)

		b := NewBroadcaster(store, tg, 0)
		result, err := b.Announce(context.Background(), "hello")

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Sent)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, result.Total, result.Sent+result.Failed)
		tg.AssertExpectations(t)
	})

	t.Run("Store failure aborts before any send", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		store.On("ListUsers", mock.Anything).Return(nil, errors.New("store down"))

		b := NewBroadcaster(store, tg, 0)
		result, err := b.Announce(context.Background(), "hello")

		assert.Error(t, err)
		assert.Nil(t, result)
		tg.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("Empty audience yields zero counters", func(t *testing.T) {
		store := &mocks.MockStore{}
		tg := &mocks.MockMessenger{}
		store.On("ListUsers", mock.Anything).Return([]*model.User{}, nil)

		b := NewBroadcaster(store, tg, 0)
		result, err := b.Announce(context.Background(), "hello")

		assert.NoError(t, err)
		assert.Equal(t, &BroadcastResult{}, result)
	})
}
