package telegram

const (
	msgStart = "Hi! I manage your task list. Send me a command such as \"add task buy milk by tomorrow 5pm\" or /help."
	msgVoice = "I can only read text messages here. Please type your command."
	msgError = "Something went wrong while handling your request. Please try again."
)
