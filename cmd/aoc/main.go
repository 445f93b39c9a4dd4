// aoc solves puzzles from Advent of Code 2022.
//
// Usage:
//
//	aoc day14 <input>           - Pour sand into a cave of rock
//	aoc day15 <input>           - Locate the distress beacon
//	aoc grid <input>            - Plot a list of x,y points
//
// Global flags:
//
//	--debug    - Log progress and dump grids to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagDebug bool

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "aoc",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2022 solutions",
	Long: `aoc reads a puzzle input file and prints the answers to both parts
of the puzzle for that day.

Examples:
  aoc day14 input.txt
  aoc day15 input.txt --row 2000000 --max 4000000
  aoc grid points.txt`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(log.InfoLevel)
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log progress and dump grids to stderr")

	rootCmd.AddCommand(day14Cmd)
	rootCmd.AddCommand(day15Cmd)
	rootCmd.AddCommand(gridCmd)
}

func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	logger.Debug("reading input", "path", path)
	return file, nil
}

func printAnswers(cmd *cobra.Command, part1, part2 any) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Part 1: %v\n", part1)
	fmt.Fprintf(out, "Part 2: %v\n", part2)
}
