package telegram

import (
	"strings"
	"time"

	"parley/sources/features"
	"parley/sources/metrics"
	"parley/sources/rendering"
	"parley/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Diplomat carries rendered chunks across the wire. Each rich chunk walks a
// ladder: Markdown first, a sanitized retry after a markup rejection, plain
// text last. A transport failure aborts whatever chunks remain.
type Diplomat struct {
	bot      *tgbotapi.BotAPI
	config   *DiplomatConfig
	features *features.FeatureManager
	metrics  *metrics.MetricsService
}

func NewDiplomat(bot *tgbotapi.BotAPI, config *DiplomatConfig, features *features.FeatureManager, metrics *metrics.MetricsService) *Diplomat {
	return &Diplomat{bot: bot, config: config, features: features, metrics: metrics}
}

// Deliver sends a rendered reply chunk by chunk, pacing consecutive sends so
// the chat client keeps them in order.
func (x *Diplomat) Deliver(logger *tracing.Logger, msg *tgbotapi.Message, chunks []rendering.Chunk) error {
	defer tracing.ProfilePoint(logger, "Diplomat delivery completed", "diplomat.deliver", tracing.ChunkCount, len(chunks))()

	richAllowed := x.features.IsEnabledDefault(features.FeatureRichDelivery, true)

	for i, chunk := range chunks {
		if i > 0 {
			time.Sleep(x.config.InterChunkDelay)
		}

		if err := x.send(logger.With(tracing.ChunkIndex, i), msg, chunk, richAllowed); err != nil {
			logger.E("Chunk delivery failed, aborting remaining chunks",
				tracing.InnerError, err, tracing.ChunkIndex, i)
			return err
		}
	}

	return nil
}

func (x *Diplomat) send(logger *tracing.Logger, msg *tgbotapi.Message, chunk rendering.Chunk, richAllowed bool) error {
	content := chunk.Content
	mode := chunk.MarkupMode

	if mode == rendering.MarkupRich && !richAllowed {
		mode = rendering.MarkupPlain
		content = rendering.Degrade(content)
	}

	if mode == rendering.MarkupRich {
		err := x.transmit(msg, chunk, content, tgbotapi.ModeMarkdown)
		if err == nil {
			x.metrics.RecordMessageSent("rich")
			return nil
		}
		if !isMarkupRejection(err) {
			x.metrics.RecordMessageSent("error")
			return err
		}

		logger.W("Transport rejected markup, retrying sanitized", tracing.MarkupMode, mode)
		sanitized := rendering.SanitizeOutsideSpans(content)
		err = x.transmit(msg, chunk, sanitized, tgbotapi.ModeMarkdown)
		if err == nil {
			x.metrics.RecordMessageSent("rich")
			return nil
		}
		if !isMarkupRejection(err) {
			x.metrics.RecordMessageSent("error")
			return err
		}

		logger.W("Sanitized markup rejected too, degrading to plain")
		content = rendering.Degrade(content)
	}

	if err := x.transmit(msg, chunk, content, ""); err != nil {
		x.metrics.RecordMessageSent("error")
		return err
	}

	x.metrics.RecordMessageSent("plain")
	return nil
}

func (x *Diplomat) transmit(msg *tgbotapi.Message, chunk rendering.Chunk, content string, parseMode string) error {
	chattable := tgbotapi.NewMessage(msg.Chat.ID, content)
	chattable.ParseMode = parseMode

	if chunk.Position == rendering.PositionFirst || chunk.Position == rendering.PositionOnly {
		chattable.ReplyToMessageID = msg.MessageID
	}

	if chunk.CarriesAttachment {
		chattable.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL(MsgFeedbackButton, x.config.FeedbackURL),
			),
		)
	}

	_, err := x.bot.Send(chattable)
	return err
}

// Reply sends a short service message with no markup, outside the ladder.
func (x *Diplomat) Reply(logger *tracing.Logger, msg *tgbotapi.Message, text string) {
	chattable := tgbotapi.NewMessage(msg.Chat.ID, text)
	chattable.ReplyToMessageID = msg.MessageID

	if _, err := x.bot.Send(chattable); err != nil {
		logger.E("Service message sending error", tracing.InnerError, err)
		x.metrics.RecordMessageSent("error")
		return
	}
	x.metrics.RecordMessageSent("plain")
}

// isMarkupRejection spots the transport's parse failure, the signal to step
// down the delivery ladder rather than abort.
func isMarkupRejection(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "can't parse entities")
}
