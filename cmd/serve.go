package cmd

import (
	"fmt"
	"os"

	"github.com/alidiusk/DiCast/internal/history"
	"github.com/alidiusk/DiCast/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the dice roller over HTTP",
	Long: `Starts an HTTP server with a POST /dice endpoint taking
{"roll": "<notation>"} and answering {"roll": [totals...]}.
With --static it also serves a frontend directory at /.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		staticDir, _ := cmd.Flags().GetString("static")
		logPath, _ := cmd.Flags().GetString("log")

		if addr == "" {
			addr = viper.GetString("listen_addr")
		}
		if addr == "" {
			addr = ":3030"
		}

		var store *history.Store
		if logPath != "" {
			s, err := history.NewStore(logPath)
			if err != nil {
				fmt.Printf("Error opening roll log: %v\n", err)
				os.Exit(1)
			}
			store = s
			defer store.Close()
		}

		srv := server.New(server.Config{
			Addr:      addr,
			StaticDir: staticDir,
			Store:     store,
		})

		if err := srv.Serve(); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default :3030, or listen_addr from config)")
	serveCmd.Flags().String("static", "", "Directory of frontend files to serve at /")
	serveCmd.Flags().String("log", "", "Append served rolls to a roll log file (JSONL)")
}
