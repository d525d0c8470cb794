package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"reviewcash/pkg/config"
)

// seenUpdatesLimit bounds the de-duplication map; entries older than an
// hour are pruned once the limit is hit.
const seenUpdatesLimit = 4096

type Telegram struct {
	bot           BotAPI
	userService   UserService
	subscriptions SubscriptionService
	cfg           config.TelegramConfig

	mu          sync.Mutex
	seenUpdates map[int]time.Time
}

func NewTelegramService(bot BotAPI, userService UserService, subscriptions SubscriptionService, cfg config.TelegramConfig) *Telegram {
	return &Telegram{
		bot:           bot,
		userService:   userService,
		subscriptions: subscriptions,
		cfg:           cfg,
		seenUpdates:   make(map[int]time.Time),
	}
}

// Run drives update delivery until ctx is canceled. In webhook mode the
// updates arrive through the HTTP surface and Run only blocks; in
// polling mode it owns delivery, so any stale webhook and its pending
// backlog are dropped first.
func (t *Telegram) Run(ctx context.Context) error {
	if t.cfg.Mode == config.ModeWebhook {
		log.Info("telegram updates are delivered via webhook")
		<-ctx.Done()
		return nil
	}

	if _, err := t.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		log.Errorf("delete webhook err: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	log.Info("telegram polling started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.HandleUpdate(update)
		}
	}
}

// HandleUpdate is the single entry point for both delivery modes, so a
// webhook redelivery of an already-processed update_id is a no-op.
func (t *Telegram) HandleUpdate(update tgbotapi.Update) {
	if !t.markSeen(update.UpdateID) {
		return
	}
	if update.Message == nil {
		return
	}

	if update.Message.Command() == "start" {
		t.handleStart(update.Message.Chat.ID)
	}
}

func (t *Telegram) markSeen(updateID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if len(t.seenUpdates) >= seenUpdatesLimit {
		for id, seen := range t.seenUpdates {
			if now.Sub(seen) > time.Hour {
				delete(t.seenUpdates, id)
			}
		}
	}

	if _, dup := t.seenUpdates[updateID]; dup {
		return false
	}
	t.seenUpdates[updateID] = now
	return true
}

// handleStart gates /start on channel membership. An unsubscribed user
// gets a subscribe button and no user row; a subscribed one gets a row
// and the web-app link. One message either way.
func (t *Telegram) handleStart(chatID int64) {
	if !t.subscriptions.IsSubscribed(chatID) {
		channel := strings.TrimPrefix(t.cfg.RequiredChannel, "@")
		msg := tgbotapi.NewMessage(chatID, "❌ Для использования бота нужно подписаться на канал")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("📢 Подписаться", "https://t.me/"+channel),
			),
		)
		if _, err := t.bot.Send(msg); err != nil {
			log.Errorf("send subscribe prompt err: %v", err)
		}
		return
	}

	if err := t.userService.EnsureUser(strconv.FormatInt(chatID, 10)); err != nil {
		log.Errorf("ensure user %d err: %v", chatID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Добро пожаловать в ReviewCash")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Открыть ReviewCash", t.cfg.WebAppURL),
		),
	)
	if _, err := t.bot.Send(msg); err != nil {
		log.Errorf("send welcome err: %v", err)
	}
}
