package telegram

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Executor runs a session command and returns the lines to send back.
type Executor interface {
	Execute(input string) ([]string, error)
}

// Bot bridges Telegram chats to a dice session.
type Bot struct {
	client       *Client
	executor     Executor
	lastUpdateID int
}

// NewBot initializes a new dice bot
func NewBot(token string, exec Executor) *Bot {
	return &Bot{
		client:       NewClient(token),
		executor:     exec,
		lastUpdateID: viper.GetInt("tg_last_update_id"),
	}
}

// Start launches the long-polling loop
func (b *Bot) Start() {
	log.Printf("Telegram bot started")
	for {
		updates, err := b.client.GetUpdates(b.lastUpdateID+1, 25)
		if err != nil {
			log.Printf("Error fetching updates: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID > b.lastUpdateID {
				b.lastUpdateID = update.UpdateID
				// Persist last_update_id
				viper.Set("tg_last_update_id", b.lastUpdateID)
				_ = viper.WriteConfig() // Ignore error if config file doesn't exist yet
			}

			if update.Message != nil {
				b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(msg *Message) {
	input := translate(msg.Text)
	if input == "" {
		return
	}

	results, err := b.executor.Execute(input)
	if err != nil {
		b.client.SendMessage(msg.Chat.ID, fmt.Sprintf("Error: %v", err))
		return
	}

	for _, line := range results {
		if line != "" {
			b.client.SendMessage(msg.Chat.ID, line)
		}
	}
}

// translate maps a Telegram message onto a session command. Slash commands
// such as "/roll 2d6" become session commands; a bare message is treated as
// a roll, so "2d6+1" or a saved name works without the prefix. Telegram may
// suffix the command with the bot's username in group chats.
func translate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if !strings.HasPrefix(text, "/") {
		return "roll " + text
	}

	parts := strings.Fields(strings.TrimPrefix(text, "/"))
	if len(parts) == 0 {
		return ""
	}

	if at := strings.IndexByte(parts[0], '@'); at >= 0 {
		parts[0] = parts[0][:at]
	}
	if parts[0] == "start" {
		parts[0] = "help"
	}

	return strings.Join(parts, " ")
}
