package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var botToken string

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage global bot configurations",
}

// telegramBotCmd represents the telegram subcommand of bot
var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register a global Telegram bot",
	Run: func(cmd *cobra.Command, args []string) {
		if botToken == "" {
			fmt.Println("---")
			fmt.Println("No token supplied. To create one:")
			fmt.Println("  1. Message @BotFather on Telegram and send /newbot.")
			fmt.Println("  2. Pick a name and a unique username for your dice bot.")
			fmt.Println("  3. Paste the HTTP API token BotFather hands back below.")
			fmt.Println("To use the bot in a group, disable its privacy mode in")
			fmt.Println("BotFather so it can read plain messages, not just commands.")
			fmt.Println("---")
			fmt.Print("token: ")

			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				botToken = strings.TrimSpace(scanner.Text())
			}
		}

		if botToken != "" {
			viper.Set("telegram_token", botToken)
			err := viper.WriteConfig()
			if err != nil {
				// WriteConfig fails when no config file exists yet.
				err = viper.SafeWriteConfig()
				if err != nil {
					// Last resort: write $HOME/.dicast.yaml directly.
					home, _ := os.UserHomeDir()
					err = viper.WriteConfigAs(home + "/.dicast.yaml")
				}
			}
			if err == nil {
				fmt.Println("Telegram bot token saved successfully.")
			} else {
				fmt.Printf("Error saving configuration: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
}
