package api

import (
	"io"
	"net/http"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/service"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// HealthInfo reports which of the required secrets were present at startup,
// without echoing their values.
type HealthInfo struct {
	BotConfigured   bool `json:"bot_configured"`
	StoreConfigured bool `json:"store_configured"`
}

type webhookRoutes struct {
	dispatcher *service.Dispatcher
	health     HealthInfo
}

func NewWebhookRoutes(handler *gin.RouterGroup, dispatcher *service.Dispatcher, health HealthInfo) {
	r := &webhookRoutes{dispatcher: dispatcher, health: health}

	handler.POST("/webhook", r.HandleUpdate)
	handler.GET("/webhook", r.Health)
}

// HandleUpdate accepts a Bot API update and always acknowledges it with 200
// once it decodes, regardless of what happens downstream. Telegram retries
// non-2xx responses, and a retried update would be processed twice.
func (r *webhookRoutes) HandleUpdate(c *gin.Context) {
	log := logger.Logger()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		log.Error("failed to decode webhook update", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	r.dispatcher.HandleUpdate(c.Request.Context(), &update)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (r *webhookRoutes) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "Bot webhook is running",
		"version":          "1.0",
		"bot_configured":   r.health.BotConfigured,
		"store_configured": r.health.StoreConfigured,
	})
}
