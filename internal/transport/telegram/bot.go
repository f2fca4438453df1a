package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rcondori/horabot/internal/config"
	"github.com/rcondori/horabot/internal/resolver"
	"github.com/rcondori/horabot/pkg/conv"
	"github.com/rcondori/horabot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// SessionID keys the persisted conversation turns of the telegram chat.
const SessionID = "telegram-owner"

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	resolver *resolver.Resolver
	ownerID  int64

	// telebot dispatches handlers concurrently; the resolver keeps
	// ordered conversation history, so answers are serialized.
	mu sync.Mutex
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	res *resolver.Resolver,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		resolver: res,
		ownerID:  cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	b.mu.Lock()
	answer, err := b.resolver.Answer(ctx, c.Text())
	b.mu.Unlock()
	if err != nil {
		logger.Error().Err(err).Msg("failed to answer question")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	htmlContent := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(answer)))
	if htmlContent == "" {
		htmlContent = answer
	}
	if err := c.Send(htmlContent, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram message")
	}

	return nil
}
