package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

// Gateway delivers rendered content to Telegram channels. Sends are paced
// with a global limiter so fan-outs stay under the Bot API flood limits.
type Gateway struct {
	bot       *tele.Bot
	limiter   *rate.Limiter
	parseMode tele.ParseMode
	logger    *slog.Logger
}

func New(cfg config.TelegramConfig, logger *slog.Logger) (*Gateway, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token: cfg.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 20
	}

	mode := tele.ModeHTML
	if strings.EqualFold(cfg.ParseMode, "markdown") {
		mode = tele.ModeMarkdownV2
	}

	return &Gateway{
		bot:       bot,
		limiter:   rate.NewLimiter(rate.Limit(rps), rps),
		parseMode: mode,
		logger:    logger.With("component", "telegram"),
	}, nil
}

// Send delivers one rendered message to one channel. The returned result is
// always populated; a failed send carries the error string instead of
// propagating it, so sibling channels keep going.
func (g *Gateway) Send(ctx context.Context, chatID int64, text string) domain.DeliveryResult {
	res := domain.DeliveryResult{ChannelID: chatID}

	if err := g.limiter.Wait(ctx); err != nil {
		res.Error = err.Error()
		return res
	}

	msg, err := g.bot.Send(tele.ChatID(chatID), text, &tele.SendOptions{
		ParseMode:             g.parseMode,
		DisableWebPagePreview: true,
	})
	if err != nil {
		g.logger.Warn("send failed",
			"chat_id", chatID,
			"error", err,
		)
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.MessageID = strconv.Itoa(msg.ID)
	return res
}
