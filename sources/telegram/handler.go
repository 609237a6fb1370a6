package telegram

import (
	"fmt"
	"strings"

	"parley/sources/artificial"
	"parley/sources/features"
	"parley/sources/metrics"
	"parley/sources/persistence/entities"
	"parley/sources/platform"
	"parley/sources/rendering"
	"parley/sources/repository"
	"parley/sources/texting/format"
	"parley/sources/throttler"
	"parley/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramHandler struct {
	diplomat  *Diplomat
	typing    *TypingManager
	users     *repository.UsersRepository
	messages  *repository.MessagesRepository
	usage     *repository.UsageRepository
	dialer    *artificial.Dialer
	renderer  *rendering.Renderer
	throttler *throttler.Throttler
	guard     *throttler.Guard
	features  *features.FeatureManager
	metrics   *metrics.MetricsService
}

func NewTelegramHandler(diplomat *Diplomat, typing *TypingManager, users *repository.UsersRepository, messages *repository.MessagesRepository, usage *repository.UsageRepository, dialer *artificial.Dialer, renderer *rendering.Renderer, throttler *throttler.Throttler, guard *throttler.Guard, fm *features.FeatureManager, metrics *metrics.MetricsService) *TelegramHandler {
	return &TelegramHandler{
		diplomat:  diplomat,
		typing:    typing,
		users:     users,
		messages:  messages,
		usage:     usage,
		dialer:    dialer,
		renderer:  renderer,
		throttler: throttler,
		guard:     guard,
		features:  fm,
		metrics:   metrics,
	}
}

func (x *TelegramHandler) HandleMessage(log *tracing.Logger, msg *tgbotapi.Message) error {
	defer tracing.ProfilePoint(log, "Telegram handler message completed", "telegram.handler.message")()
	log.I("Got message")

	if reason := ignorable(msg); reason != "" {
		log.I("Ignoring message", "reason", reason)
		x.metrics.RecordMessageIgnored(reason)
		return nil
	}

	user, err := x.user(log, msg)
	if err != nil {
		log.E("Error getting or creating user", tracing.InnerError, err)
		return err
	}

	if !platform.BoolValue(user.IsActive, true) {
		log.I("Ignoring message from deactivated user")
		x.metrics.RecordMessageIgnored("inactive")
		return nil
	}

	if msg.IsCommand() {
		log = log.With(tracing.CommandIssued, msg.Command())
		x.metrics.RecordCommandUsed(msg.Command())

		switch msg.Command() {
		case "start":
			x.HandleStartCommand(log, msg)
		case "help":
			x.HandleHelpCommand(log, msg)
		case "forget":
			x.HandleForgetCommand(log, user, msg)
		case "stats":
			x.HandleStatsCommand(log, msg)
		case "ask":
			return x.HandleAskCommand(log, user, msg)
		default:
			log.I("Unknown command, showing help")
			x.diplomat.Reply(log, msg, MsgHelp)
		}
		return nil
	}

	// In groups the bot only speaks when spoken to.
	if !msg.Chat.IsPrivate() && !isAddressedToBot(msg) {
		x.metrics.RecordMessageIgnored("unaddressed")
		return nil
	}

	return x.converse(log, user, msg, x.GetRequestText(msg))
}

func (x *TelegramHandler) converse(log *tracing.Logger, user *entities.User, msg *tgbotapi.Message, text string) error {
	if !x.throttler.IsAllowed(user.UserID) {
		log.I("Message throttled")
		x.metrics.RecordMessageIgnored("throttled")
		x.diplomat.Reply(log, msg, MsgThrottled)
		return nil
	}

	if x.features.IsEnabledDefault(features.FeatureSpamFilter, true) && x.guard.IsSpam(user.UserID, text) {
		log.I("Message flagged as spam")
		x.metrics.RecordMessageIgnored("spam")
		x.diplomat.Reply(log, msg, MsgSpam)
		return nil
	}

	x.typing.Start(msg.Chat.ID)
	defer x.typing.Stop(msg.Chat.ID)

	reply, err := x.dialer.Dial(log, user, msg.Chat.ID, text)
	if err != nil {
		log.E("Dial failed", tracing.InnerError, err)
		x.metrics.RecordMessageHandled("dial_error")
		return err
	}

	chunks := x.renderer.Render(log, reply, true)
	if err := x.diplomat.Deliver(log, msg, chunks); err != nil {
		x.metrics.RecordMessageHandled("delivery_error")
		return err
	}

	x.metrics.RecordMessageHandled("ok")
	return nil
}

func (x *TelegramHandler) HandleStartCommand(log *tracing.Logger, msg *tgbotapi.Message) {
	x.diplomat.Reply(log, msg, MsgStart)
}

func (x *TelegramHandler) HandleHelpCommand(log *tracing.Logger, msg *tgbotapi.Message) {
	x.diplomat.Reply(log, msg, MsgHelp)
}

func (x *TelegramHandler) HandleForgetCommand(log *tracing.Logger, user *entities.User, msg *tgbotapi.Message) {
	var cmd ForgetCmd
	if args := strings.TrimSpace(msg.CommandArguments()); args != "" {
		if _, err := x.ParseCmd(log, &cmd, args); err != nil {
			x.diplomat.Reply(log, msg, MsgHelp)
			return
		}
	}

	if err := x.messages.Forget(log, user, msg.Chat.ID, cmd.All); err != nil {
		x.diplomat.Reply(log, msg, MsgError)
		return
	}

	if cmd.All {
		x.diplomat.Reply(log, msg, MsgForgottenAll)
	} else {
		x.diplomat.Reply(log, msg, MsgForgotten)
	}
}

func (x *TelegramHandler) HandleStatsCommand(log *tracing.Logger, msg *tgbotapi.Message) {
	usage, err := x.usage.GetChatUsage(log, msg.Chat.ID)
	if err != nil {
		x.diplomat.Reply(log, msg, MsgError)
		return
	}

	x.diplomat.Reply(log, msg, fmt.Sprintf(
		"Messages: %s\nReplies: %s\nTokens: %s\nSpent: %s",
		format.Numberify(usage.Messages),
		format.Numberify(usage.Replies),
		format.Numberify(usage.Tokens),
		format.CurrencifyDecimal(usage.Cost),
	))
}

func (x *TelegramHandler) HandleAskCommand(log *tracing.Logger, user *entities.User, msg *tgbotapi.Message) error {
	text := strings.TrimSpace(x.GetRequestText(msg))
	if text == "" {
		x.diplomat.Reply(log, msg, MsgEmptyAsk)
		return nil
	}
	return x.converse(log, user, msg, text)
}

func (x *TelegramHandler) user(log *tracing.Logger, msg *tgbotapi.Message) (*entities.User, error) {
	var username *string
	if msg.From.UserName != "" {
		username = platform.StringPtr(msg.From.UserName)
	}

	fullname := strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	var fullnamePtr *string
	if fullname != "" {
		fullnamePtr = platform.StringPtr(fullname)
	}

	return x.users.GetOrCreateUser(log, msg.From.ID, username, fullnamePtr)
}

// ignorable filters out message kinds the bot has nothing to say to.
func ignorable(msg *tgbotapi.Message) string {
	switch {
	case msg.From == nil || msg.From.IsBot:
		return "bot_origin"
	case msg.Sticker != nil:
		return "sticker"
	case msg.NewChatMembers != nil, msg.LeftChatMember != nil, msg.PinnedMessage != nil:
		return "system"
	case strings.TrimSpace(msg.Text) == "" && !msg.IsCommand():
		return "empty"
	}
	return ""
}

// isAddressedToBot is true when a group message replies to one of ours.
func isAddressedToBot(msg *tgbotapi.Message) bool {
	return msg.ReplyToMessage != nil &&
		msg.ReplyToMessage.From != nil &&
		msg.ReplyToMessage.From.IsBot
}
