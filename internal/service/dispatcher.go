package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/market"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/metrics"
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
	"github.com/kriptobogasinet22/telegram-borsa-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var symbolPattern = regexp.MustCompile(`^[A-Z]{3,6}$`)

// Dispatcher interprets one inbound update at a time and holds no state of
// its own; everything durable is re-fetched from the store per invocation.
type Dispatcher struct {
	store  Store
	tg     Messenger
	market market.Provider
}

func NewDispatcher(store Store, tg Messenger, provider market.Provider) *Dispatcher {
	return &Dispatcher{
		store:  store,
		tg:     tg,
		market: provider,
	}
}

// HandleUpdate routes one webhook payload. It never returns an error: the
// platform expects a fast acknowledgment regardless of what happened here,
// so failures are logged and swallowed.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	switch {
	case update.ChatJoinRequest != nil:
		metrics.UpdatesTotal.WithLabelValues("chat_join_request").Inc()
		d.handleJoinRequest(ctx, update.ChatJoinRequest)
	case update.ChatMember != nil:
		metrics.UpdatesTotal.WithLabelValues("chat_member").Inc()
		d.handleChatMember(ctx, update.ChatMember)
	case update.CallbackQuery != nil:
		metrics.UpdatesTotal.WithLabelValues("callback_query").Inc()
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		metrics.UpdatesTotal.WithLabelValues("message").Inc()
		d.handleMessage(ctx, update.Message)
	default:
		metrics.UpdatesTotal.WithLabelValues("ignored").Inc()
		logger.Logger().Debug("ignoring update without a handled payload",
			zap.Int("update_id", update.UpdateID))
	}
}

func (d *Dispatcher) reply(chatID int64, text string) {
	if err := d.tg.SendMessage(chatID, text); err != nil {
		logger.Logger().Error("failed to send message",
			zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (d *Dispatcher) replyWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if err := d.tg.SendMessageWithMarkup(chatID, text, markup); err != nil {
		logger.Logger().Error("failed to send message",
			zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	text := strings.TrimSpace(msg.Text)
	chatID := msg.Chat.ID

	// Everything except /start is behind the membership gate.
	if !strings.HasPrefix(text, "/start") {
		if !d.ensureMember(ctx, msg.From, chatID) {
			return
		}
	}

	d.routeCommand(ctx, msg.From, chatID, text)
}

func (d *Dispatcher) routeCommand(ctx context.Context, from *tgbotapi.User, chatID int64, text string) {
	command := func(name string) { metrics.CommandsTotal.WithLabelValues(name).Inc() }

	arg := func(prefix string) string {
		return strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(text, prefix)))
	}

	switch {
	case text == "/start" || strings.HasPrefix(text, "/start "):
		command("start")
		d.handleStart(ctx, from, chatID)

	case strings.HasPrefix(text, "/derinlik "):
		command("derinlik")
		d.reply(chatID, d.depthText(arg("/derinlik ")))

	case strings.HasPrefix(text, "/teorik "):
		command("teorik")
		d.reply(chatID, d.theoreticalText(arg("/teorik ")))

	case strings.HasPrefix(text, "/temel "):
		command("temel")
		d.reply(chatID, d.fundamentalsText(arg("/temel ")))

	case strings.HasPrefix(text, "/teknik "):
		command("teknik")
		d.reply(chatID, d.technicalText(arg("/teknik ")))

	case strings.HasPrefix(text, "/haber "):
		command("haber")
		d.reply(chatID, d.newsText(arg("/haber ")))

	case strings.HasPrefix(text, "/viop "):
		command("viop")
		d.reply(chatID, d.viopText(arg("/viop ")))

	case strings.HasPrefix(text, "/akd "):
		command("akd")
		d.reply(chatID, pendingMessage("🏢", arg("/akd "), "AKD analizi"))

	case strings.HasPrefix(text, "/takas "):
		command("takas")
		d.reply(chatID, pendingMessage("💱", arg("/takas "), "takas analizi"))

	case strings.HasPrefix(text, "/karsilastir "):
		command("karsilastir")
		symbols := strings.Fields(arg("/karsilastir "))
		if len(symbols) < 2 {
			d.reply(chatID, compareUsageMessage)
			return
		}
		d.reply(chatID, d.compareText(symbols[0], symbols[1]))

	case text == "/bulten":
		command("bulten")
		d.reply(chatID, d.bulletinText())

	case strings.HasPrefix(text, "/favoriekle "):
		command("favoriekle")
		d.addFavorites(ctx, from.ID, chatID, parseSymbols(strings.TrimPrefix(text, "/favoriekle ")))

	case strings.HasPrefix(text, "/favoricikar "):
		command("favoricikar")
		d.removeFavorites(ctx, from.ID, chatID, parseSymbols(strings.TrimPrefix(text, "/favoricikar ")))

	case text == "/favorisifirla":
		command("favorisifirla")
		d.clearFavorites(ctx, from.ID, chatID)

	case text == "/favori":
		command("favori")
		d.listFavorites(ctx, from.ID, chatID)

	case symbolPattern.MatchString(text):
		command("symbol")
		d.sendSymbolMenu(chatID, text)

	default:
		command("help")
		d.reply(chatID, helpMessage)
	}
}

func (d *Dispatcher) sendSymbolMenu(chatID int64, symbol string) {
	symbol = strings.ToUpper(symbol)
	text := fmt.Sprintf("📊 <b>%s</b> için analiz seçin:", symbol)
	if quote, err := d.market.Quote(symbol); err == nil && quote != nil {
		text += fmt.Sprintf("\n💰 Mevcut: %.2f TL (%s%.2f%%)",
			quote.Price, sign(quote.ChangePercent), quote.ChangePercent)
	}
	d.replyWithMarkup(chatID, text, symbolMenuKeyboard(symbol))
}

func (d *Dispatcher) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// Answer first so the button's loading spinner clears even if the
	// action below fails.
	if err := d.tg.AnswerCallback(cq.ID, ""); err != nil {
		logger.Logger().Error("failed to answer callback", zap.String("callback_id", cq.ID), zap.Error(err))
	}

	chatID := cq.From.ID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}
	data := cq.Data

	symbolAfter := func(prefix string) string {
		return strings.ToUpper(strings.TrimPrefix(data, prefix))
	}

	switch {
	case data == "check_membership":
		d.checkMembership(ctx, cq.From.ID, chatID)
	case strings.HasPrefix(data, "derinlik_"):
		d.reply(chatID, d.depthText(symbolAfter("derinlik_")))
	case strings.HasPrefix(data, "teorik_"):
		d.reply(chatID, d.theoreticalText(symbolAfter("teorik_")))
	case strings.HasPrefix(data, "temel_"):
		d.reply(chatID, d.fundamentalsText(symbolAfter("temel_")))
	case strings.HasPrefix(data, "teknik_"):
		d.reply(chatID, d.technicalText(symbolAfter("teknik_")))
	case strings.HasPrefix(data, "haber_"):
		d.reply(chatID, d.newsText(symbolAfter("haber_")))
	case strings.HasPrefix(data, "viop_"):
		d.reply(chatID, d.viopText(symbolAfter("viop_")))
	case strings.HasPrefix(data, "akd_"):
		d.reply(chatID, pendingMessage("🏢", symbolAfter("akd_"), "AKD analizi"))
	case strings.HasPrefix(data, "takas_"):
		d.reply(chatID, pendingMessage("💱", symbolAfter("takas_"), "takas analizi"))
	case strings.HasPrefix(data, "favori_ekle_"):
		d.addFavorites(ctx, cq.From.ID, chatID, []string{symbolAfter("favori_ekle_")})
	case strings.HasPrefix(data, "yenile_"):
		d.sendSymbolMenu(chatID, symbolAfter("yenile_"))
	default:
		logger.Logger().Debug("unhandled callback payload", zap.String("data", data))
	}
}

func (d *Dispatcher) handleJoinRequest(ctx context.Context, req *tgbotapi.ChatJoinRequest) {
	log := logger.Logger()
	userID := req.From.ID
	chatID := req.Chat.ID

	jr := joinRequestFromUpdate(req)
	if err := d.store.UpsertJoinRequest(ctx, jr); err != nil {
		log.Error("failed to store join request",
			zap.Int64("user_id", userID), zap.Int64("chat_id", chatID), zap.Error(err))
	}

	// Trust-the-request: the user is unlocked the moment the request
	// arrives; the platform-side approval stays with the admins.
	if err := d.store.SetUserMembership(ctx, userID, true); err != nil {
		log.Error("failed to grant membership",
			zap.Int64("user_id", userID), zap.Error(err))
	} else {
		log.Info("membership granted on join request",
			zap.Int64("user_id", userID), zap.Int64("chat_id", chatID))
	}

	if err := d.tg.SendMessage(userID, joinRequestReceivedMessage); err != nil {
		log.Error("failed to send welcome message",
			zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (d *Dispatcher) handleChatMember(ctx context.Context, upd *tgbotapi.ChatMemberUpdated) {
	status := upd.NewChatMember.Status
	if status != "member" && status != "administrator" && status != "creator" {
		return
	}

	log := logger.Logger()
	userID := upd.NewChatMember.User.ID
	chatID := upd.Chat.ID

	if err := d.store.SetJoinRequestStatus(ctx, userID, chatID, model.JoinRequestApproved, nil); err != nil {
		log.Error("failed to mark join request approved",
			zap.Int64("user_id", userID), zap.Int64("chat_id", chatID), zap.Error(err))
	}
	if err := d.store.SetUserMembership(ctx, userID, true); err != nil {
		log.Error("failed to grant membership",
			zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := d.tg.SendMessage(userID, memberApprovedMessage); err != nil {
		log.Error("failed to send welcome message",
			zap.Int64("user_id", userID), zap.Error(err))
	}
}
