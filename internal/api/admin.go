package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/repository"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const inviteLinkName = "Bot Kullanıcıları"

type adminRoutes struct {
	store       service.Store
	tg          service.Messenger
	broadcaster *service.Broadcaster
}

func NewAdminRoutes(handler *gin.RouterGroup, store service.Store, tg service.Messenger, broadcaster *service.Broadcaster) {
	r := &adminRoutes{store: store, tg: tg, broadcaster: broadcaster}
	h := handler.Group("/admin")
	{
		h.GET("/users", r.ListUsers)
		h.GET("/settings", r.GetSettings)
		h.POST("/settings", r.UpdateSettings)
		h.POST("/create-invite", r.CreateInvite)
		h.POST("/announcement", r.SendAnnouncement)
		h.GET("/join-requests", r.ListJoinRequests)
		h.POST("/join-requests/:user_id/approve", r.ApproveJoinRequest)
		h.POST("/join-requests/:user_id/decline", r.DeclineJoinRequest)
	}
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsMember  bool      `json:"is_member"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *adminRoutes) ListUsers(c *gin.Context) {
	log := logger.Logger()

	users, err := r.store.ListUsers(c.Request.Context())
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			IsMember:  u.IsMember,
			CreatedAt: u.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"users": out, "count": len(out)})
}

type SettingsResponse struct {
	MainChannelID   string `json:"main_channel_id"`
	InviteLink      string `json:"invite_link"`
	MainChannelLink string `json:"main_channel_link"`
}

func (r *adminRoutes) GetSettings(c *gin.Context) {
	log := logger.Logger()
	ctx := c.Request.Context()

	var out SettingsResponse
	for _, s := range []struct {
		key string
		dst *string
	}{
		{model.SettingMainChannelID, &out.MainChannelID},
		{model.SettingInviteLink, &out.InviteLink},
		{model.SettingMainChannelLink, &out.MainChannelLink},
	} {
		value, err := r.store.GetSetting(ctx, s.key)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			log.Error("failed to read setting", zap.String("key", s.key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read settings"})
			return
		}
		*s.dst = value
	}

	c.JSON(http.StatusOK, out)
}

type UpdateSettingsRequest struct {
	MainChannelID   string `json:"main_channel_id"`
	InviteLink      string `json:"invite_link"`
	MainChannelLink string `json:"main_channel_link"`
}

// UpdateSettings writes only the keys present in the request; an empty field
// leaves the stored value untouched.
func (r *adminRoutes) UpdateSettings(c *gin.Context) {
	log := logger.Logger()

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()
	for key, value := range map[string]string{
		model.SettingMainChannelID:   req.MainChannelID,
		model.SettingInviteLink:      req.InviteLink,
		model.SettingMainChannelLink: req.MainChannelLink,
	} {
		if value == "" {
			continue
		}
		if err := r.store.SetSetting(ctx, key, value); err != nil {
			log.Error("failed to write setting", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (r *adminRoutes) CreateInvite(c *gin.Context) {
	log := logger.Logger()
	ctx := c.Request.Context()

	channelRaw, err := r.store.GetSetting(ctx, model.SettingMainChannelID)
	if err != nil {
		log.Error("main channel not configured", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ana kanal ayarlanmamış"})
		return
	}

	channelID, err := strconv.ParseInt(channelRaw, 10, 64)
	if err != nil {
		log.Error("invalid main channel id", zap.String("value", channelRaw), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz kanal ID"})
		return
	}

	if _, err := r.tg.GetChat(channelID); err != nil {
		log.Error("bot cannot access channel", zap.Int64("channel_id", channelID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bot kanala erişemiyor. Botun kanalda admin olduğundan emin olun."})
		return
	}

	link, err := r.tg.CreateInviteLink(channelID, inviteLinkName)
	if err != nil {
		log.Error("failed to create invite link", zap.Int64("channel_id", channelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invite link"})
		return
	}

	if err := r.store.SetSetting(ctx, model.SettingInviteLink, link.InviteLink); err != nil {
		log.Error("failed to persist invite link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist invite link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invite_link": link.InviteLink,
		"name":        link.Name,
		"expire_date": link.ExpireDate,
	})
}

type AnnouncementRequest struct {
	Message string `json:"message"`
}

func (r *adminRoutes) SendAnnouncement(c *gin.Context) {
	log := logger.Logger()

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	result, err := r.broadcaster.Announce(c.Request.Context(), req.Message)
	if err != nil {
		log.Error("failed to broadcast announcement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send announcement"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type JoinRequestResponse struct {
	UserID      int64     `json:"user_id"`
	ChatID      int64     `json:"chat_id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Bio         string    `json:"bio"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

func (r *adminRoutes) ListJoinRequests(c *gin.Context) {
	log := logger.Logger()

	requests, err := r.store.ListPendingJoinRequests(c.Request.Context())
	if err != nil {
		log.Error("failed to list join requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list join requests"})
		return
	}

	out := make([]JoinRequestResponse, len(requests))
	for i, jr := range requests {
		out[i] = JoinRequestResponse{
			UserID:      jr.UserID,
			ChatID:      jr.ChatID,
			Username:    jr.Username,
			FirstName:   jr.FirstName,
			LastName:    jr.LastName,
			Bio:         jr.Bio,
			Status:      string(jr.Status),
			RequestedAt: jr.RequestedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"join_requests": out, "count": len(out)})
}

func (r *adminRoutes) ApproveJoinRequest(c *gin.Context) {
	r.resolveJoinRequest(c, model.JoinRequestApproved)
}

func (r *adminRoutes) DeclineJoinRequest(c *gin.Context) {
	r.resolveJoinRequest(c, model.JoinRequestDeclined)
}

type ResolveJoinRequest struct {
	ChatID      int64  `json:"chat_id"`
	ProcessedBy *int64 `json:"processed_by"`
}

func (r *adminRoutes) resolveJoinRequest(c *gin.Context, status model.JoinRequestStatus) {
	log := logger.Logger()

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	var req ResolveJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat_id is required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := r.store.GetJoinRequest(ctx, userID, req.ChatID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "join request not found"})
			return
		}
		log.Error("failed to load join request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if status == model.JoinRequestApproved {
		err = r.tg.ApproveJoinRequest(req.ChatID, userID)
	} else {
		err = r.tg.DeclineJoinRequest(req.ChatID, userID)
	}
	if err != nil {
		log.Error("failed to resolve join request on telegram",
			zap.Int64("user_id", userID), zap.String("status", string(status)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "telegram request failed"})
		return
	}

	if err := r.store.SetJoinRequestStatus(ctx, userID, req.ChatID, status, req.ProcessedBy); err != nil {
		log.Error("failed to update join request status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update join request"})
		return
	}

	if status == model.JoinRequestApproved {
		if err := r.store.SetUserMembership(ctx, userID, true); err != nil {
			log.Error("failed to update membership after approval", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
}
