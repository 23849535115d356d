package notification

import (
	"context"
	"fmt"

	"github.com/Soloquie/Alojapp-sub002/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const stayDateLayout = "02.01.2006"

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

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation received*\n\n"+"Lodging: %s\n"+"Stay: %s – %s\n"+"Total: %s\n"+"Pay before check-in to confirm your stay.",
		lodging.Name,
		r.Checkin.Format(stayDateLayout), r.Checkout.Format(stayDateLayout),
		r.TotalPrice,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation confirmed!*\n\n"+"Lodging: %s\n"+"Stay: %s – %s",
		lodging.Name,
		r.Checkin.Format(stayDateLayout), r.Checkout.Format(stayDateLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation) {
	reason := ""
	if r.CancellationReason != nil && *r.CancellationReason != "" {
		reason = "\nReason: " + *r.CancellationReason
	}
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Lodging: %s\n"+"Stay: %s – %s%s",
		lodging.Name,
		r.Checkin.Format(stayDateLayout), r.Checkout.Format(stayDateLayout),
		reason,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, user *domain.User, lodging *domain.Lodging, r *domain.Reservation, p *domain.Payment) {
	text := fmt.Sprintf(
		"*Payment received*\n\n"+"Lodging: %s\n"+"Amount: %s (%s)\n"+"Your stay %s – %s is confirmed.",
		lodging.Name,
		p.Amount, p.Method,
		r.Checkin.Format(stayDateLayout), r.Checkout.Format(stayDateLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
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
