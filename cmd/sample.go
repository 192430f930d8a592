package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alidiusk/DiCast/internal/dice"
	"github.com/alidiusk/DiCast/internal/notation"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <notation>",
	Short: "Sample a notation repeatedly and print its distribution",
	Long: `Rolls the given notation many times and prints a histogram of the
totals, useful for eyeballing how a die behaves before committing to it.

  dicast sample -n 100000 4d6s1`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := strings.Join(args, " ")
		n, _ := cmd.Flags().GetInt("rolls")
		seed, _ := cmd.Flags().GetInt64("seed")

		_, spec, err := notation.Parse(target)
		if err != nil {
			fmt.Printf("Invalid notation %q: %v\n", target, err)
			os.Exit(1)
		}

		var roller *dice.Roller
		if cmd.Flags().Changed("seed") {
			roller = dice.NewSeededRoller(seed)
		} else {
			s, err := dice.NewSeed()
			if err != nil {
				fmt.Printf("Failed to seed roller: %v\n", err)
				os.Exit(1)
			}
			roller = dice.NewSeededRoller(s)
		}

		counts := make(map[int64]int)
		bar := progressbar.Default(int64(n), "Sampling")
		for i := 0; i < n; i++ {
			counts[roller.Roll(spec)]++
			bar.Add(1)
		}

		totals := make([]int64, 0, len(counts))
		for total := range counts {
			totals = append(totals, total)
		}
		sort.Slice(totals, func(i, j int) bool { return totals[i] < totals[j] })

		peak := 0
		for _, c := range counts {
			if c > peak {
				peak = c
			}
		}

		fmt.Printf("\n%s over %d rolls:\n", target, n)
		for _, total := range totals {
			c := counts[total]
			width := 0
			if peak > 0 {
				width = c * 50 / peak
			}
			fmt.Printf("%6d %6.2f%% %s\n", total, float64(c)*100/float64(n), strings.Repeat("#", width))
		}
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntP("rolls", "n", 10000, "Number of rolls to sample")
	sampleCmd.Flags().Int64("seed", 0, "Seed the roller for reproducible results")
}
