package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alidiusk/DiCast/internal/history"
	"github.com/alidiusk/DiCast/internal/session"

	"github.com/spf13/cobra"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll <notation|name>",
	Short: "Roll dice notation once and print the results",
	Long: `Evaluates dice notation and prints one total per repetition.
The argument may also be the name of a saved die (see 'dicast repl').

  dicast roll 3x4d6*5+1s2
  dicast roll --seed 42 2d20`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := strings.Join(args, " ")
		seed, _ := cmd.Flags().GetInt64("seed")
		logPath, _ := cmd.Flags().GetString("log")

		var store session.Store
		if logPath != "" {
			s, err := history.NewStore(logPath)
			if err != nil {
				fmt.Printf("Error opening roll log: %v\n", err)
				os.Exit(1)
			}
			store = s
		}

		app, err := session.NewSession(dataDirs(), store)
		if err != nil {
			fmt.Printf("Failed to bootstrap session: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		if cmd.Flags().Changed("seed") {
			app.Reseed(seed)
		}

		rolls, err := app.Roll(target)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		for _, roll := range rolls {
			fmt.Println(roll)
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Int64("seed", 0, "Seed the roller for reproducible results")
	rollCmd.Flags().String("log", "", "Append results to a roll log file (JSONL)")
}
