package telegram

// ForgetCmd clears the conversation window; --all wipes the durable chat
// history as well.
type ForgetCmd struct {
	All bool `help:"Also wipe the stored chat history"`
}
