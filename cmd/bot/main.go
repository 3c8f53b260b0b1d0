package main

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/core/ports"
	"github.com/koleso24/cabinet-api/internal/infrastructure/db/mongo"
	"github.com/koleso24/cabinet-api/internal/infrastructure/sheets"
	"github.com/koleso24/cabinet-api/internal/pkg/config"
	"github.com/koleso24/cabinet-api/pkg/logger"
)

const menuText = "📋 Меню"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.BotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN is required for the bot")
	}
	if cfg.WebAppURL == "" {
		log.Fatal().Msg("WEBAPP_URL is required for the bot")
	}

	repo := buildRepository(cfg, log)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot init failed")
	}
	log.Info().Str("username", bot.Self.UserName).Msg("bot authorized")

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30

	h := &handler{bot: bot, repo: repo, webAppURL: cfg.WebAppURL, log: log}
	for update := range bot.GetUpdatesChan(updateCfg) {
		if update.Message == nil {
			continue
		}
		h.handle(update.Message)
	}
}

func buildRepository(cfg *config.Config, log zerolog.Logger) ports.ClientRepository {
	if cfg.DataSource == config.DataSourceMongo {
		_, db, err := mongo.Connect(context.Background(), mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		return mongo.NewClientRepository(db)
	}
	return sheets.NewRepository(
		sheets.NewClient(cfg.Sheets.ScriptURL),
		cfg.Sheets.ClientSheet,
		cfg.Sheets.ArchiveSheet,
		cfg.Sheets.TemplateSheet,
	)
}

type handler struct {
	bot       *tgbotapi.BotAPI
	repo      ports.ClientRepository
	webAppURL string
	log       zerolog.Logger
}

func (h *handler) handle(msg *tgbotapi.Message) {
	switch {
	case msg.Contact != nil:
		h.handleContact(msg)
	case msg.IsCommand() && msg.Command() == "start":
		h.handleStart(msg)
	case msg.Text == menuText:
		h.sendCabinetLink(msg.Chat.ID)
	}
}

// handleStart asks for the contact so a fresh chat can be linked to a client
// record before handing out the cabinet link.
func (h *handler) handleStart(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Добро пожаловать! Нажмите кнопку "+menuText)
	reply.ReplyMarkup = tgbotapi.ReplyKeyboardMarkup{
		Keyboard: [][]tgbotapi.KeyboardButton{{
			{Text: menuText, RequestContact: true},
		}},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
	h.send(reply)
}

// handleContact registers the shared phone number and replies with the link.
func (h *handler) handleContact(msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	err := h.repo.AddClient(context.Background(), chatID, msg.Contact.PhoneNumber)
	if err != nil && !errors.Is(err, domain.ErrClientExists) {
		h.log.Error().Err(err).Str("chat_id", chatID).Msg("client registration failed")
		h.send(tgbotapi.NewMessage(msg.Chat.ID, "Произошла ошибка при авторизации"))
		return
	}

	h.sendCabinetLink(msg.Chat.ID)
}

// sendCabinetLink replies with the Mini App link. The Telegram client turns
// it into the in-app cabinet when opened from this chat.
func (h *handler) sendCabinetLink(chatID int64) {
	h.send(tgbotapi.NewMessage(chatID, "🔐 Ваша ссылка на личный кабинет: "+h.webAppURL))
}

func (h *handler) send(msg tgbotapi.MessageConfig) {
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("telegram send failed")
	}
}
