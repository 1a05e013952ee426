package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func slotLine(r *domain.Reservation) string {
	return fmt.Sprintf("Date: %s at %s\nTable: %d\nGuests: %d",
		r.Date.Format("02.01.2006"), r.Time, r.TableNumber, r.Guests)
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, customer *domain.Customer, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation received!*\n\n%s\n\nWe will confirm it shortly.",
		slotLine(r),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, customer *domain.Customer, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation confirmed!*\n\n%s\n\nSee you there.",
		slotLine(r),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, customer *domain.Customer, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n%s",
		slotLine(r),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
