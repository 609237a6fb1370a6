package telegram

import (
	"strings"

	"parley/sources/texting"
	"parley/sources/tracing"

	"github.com/alecthomas/kong"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (x *TelegramHandler) GetRequestText(msg *tgbotapi.Message) string {
	if msg.IsCommand() {
		req := msg.CommandArguments()
		if !msg.Chat.IsPrivate() && len(strings.TrimSpace(req)) == 0 {
			return ""
		}
		return req
	}
	return msg.Text
}

func (x *TelegramHandler) ParseCmd(log *tracing.Logger, cmd interface{}, args string) (*kong.Context, error) {
	parser, err := kong.New(cmd)
	if err != nil {
		return nil, err
	}

	ctx, err := parser.Parse(texting.ParseCmdArgs(args))
	if err != nil {
		log.W("Error parsing command", tracing.InnerError, err)
		return nil, err
	}
	return ctx, nil
}
