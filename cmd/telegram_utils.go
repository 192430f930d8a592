package cmd

import (
	"fmt"

	"github.com/alidiusk/DiCast/internal/session"
	"github.com/alidiusk/DiCast/internal/telegram"

	"github.com/spf13/viper"
)

// maybeStartBot checks if telegram is configured and starts the background worker
func maybeStartBot(app *session.Session) {
	token := viper.GetString("telegram_token")
	if token == "" {
		return
	}

	bot := telegram.NewBot(token, app)

	// Run in background
	go bot.Start()
	fmt.Println("[Telegram Bot] Active")
}
