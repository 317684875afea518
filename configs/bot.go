package configs

type Bot struct {
	Token  string `env:"TELEGRAM_DAO_NOTIFICATIONS_BOT_TOKEN,notEmpty"`
	ChatID int64  `env:"TELEGRAM_DAO_NOTIFICATIONS_CHAT_ID,notEmpty"`
}
