package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/aoc2022/internal/sensor"
)

var (
	flagRow int
	flagMax int
)

var day15Cmd = &cobra.Command{
	Use:   "day15 <input>",
	Short: "Beacon Exclusion Zone",
	Long: `Reads sensor reports, one per line:

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

Part 1 counts the positions in --row where no beacon can be. Part 2
finds the only uncovered position with both coordinates between 0 and
--max and prints its tuning frequency.`,
	Args: cobra.ExactArgs(1),
	RunE: runDay15,
}

func init() {
	day15Cmd.Flags().IntVar(&flagRow, "row", 2000000, "Row to count covered positions in")
	day15Cmd.Flags().IntVar(&flagMax, "max", 4000000, "Largest coordinate of the search area")
}

func runDay15(cmd *cobra.Command, args []string) error {
	file, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	sensors, err := sensor.Parse(file)
	if err != nil {
		return fmt.Errorf("parse sensors: %w", err)
	}
	if bounds, ok := sensor.Bounds(sensors); ok {
		logger.Debug("parsed sensors", "count", len(sensors), "coverage", bounds)
	}

	part1 := sensor.CoveredInRow(sensors, flagRow)

	gap, ok := sensor.FindGap(sensors, flagMax)
	if !ok {
		return fmt.Errorf("no uncovered position between 0 and %v", flagMax)
	}
	logger.Debug("found distress beacon", "pos", gap)

	printAnswers(cmd, part1, sensor.TuningFrequency(gap))
	return nil
}
