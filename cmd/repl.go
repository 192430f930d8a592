/*
Copyright © 2026 alidiusk
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alidiusk/DiCast/internal/history"
	"github.com/alidiusk/DiCast/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive dice shell",
	Long: `Starts the read-eval-print loop for rolling, saving and checking dice.
Usage:
	> roll 3x4d6*5+1s2`,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data_dir")
		logPath, _ := cmd.Flags().GetString("log")

		dirs := dataDirs()
		if dataDir != "" {
			dirs = append([]string{dataDir}, dirs...)
		}

		if logPath == "" {
			logPath = filepath.Join(dirs[0], "rolls.jsonl")
		}

		store, err := history.NewStore(logPath)
		if err != nil {
			fmt.Printf("Failed to open roll log: %v\n", err)
			os.Exit(1)
		}

		app, err := session.NewSession(dirs, store)
		if err != nil {
			fmt.Printf("Failed to bootstrap session: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		fmt.Printf("Starting REPL (roll log: %s)...\nType 'exit' or 'quit' to leave.\n\n", logPath)

		maybeStartBot(app)

		if err := RunTUI(app); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringP("data_dir", "d", "", "Directory holding macros.yaml and the roll log")
	replCmd.Flags().String("log", "", "Roll log file (default <data_dir>/rolls.jsonl)")
}
