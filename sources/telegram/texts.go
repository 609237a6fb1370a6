package telegram

const (
	MsgStart = "Hello! Write me anything and I will answer. " +
		"Use /help to see what else I can do."

	MsgHelp = "I forward your messages to a language model and bring the answer back.\n\n" +
		"/forget — drop your conversation window in this chat\n" +
		"/forget --all — also wipe your stored history here\n" +
		"/stats — usage numbers for this chat\n" +
		"/ask <text> — talk to me inside a group chat"

	MsgError = "Something went wrong on my side. Please try again in a moment."

	MsgForgotten    = "Done, the conversation window is clear."
	MsgForgottenAll = "Done, the conversation window and the stored history are gone."

	MsgThrottled = "Easy there. Give me a few seconds between messages."
	MsgSpam      = "I have seen that exact message a few times already, so I will sit this one out."

	MsgEmptyAsk = "Write the question right after the command, like: /ask what is a goroutine?"

	MsgFeedbackButton = "Leave feedback"
)
