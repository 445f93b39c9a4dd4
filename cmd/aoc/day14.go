package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/aoc2022/internal/cave"
)

var day14Cmd = &cobra.Command{
	Use:   "day14 <input>",
	Short: "Regolith Reservoir",
	Long: `Pours sand into a cave described by rock paths, one per line:

  498,4 -> 498,6 -> 496,6

Part 1 counts the grains that come to rest before sand falls into the
abyss. Part 2 adds a floor below the lowest rock and counts the grains
that come to rest before the entry is blocked.`,
	Args: cobra.ExactArgs(1),
	RunE: runDay14,
}

func runDay14(cmd *cobra.Command, args []string) error {
	file, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	c, err := cave.Parse(file)
	if err != nil {
		return fmt.Errorf("parse cave: %w", err)
	}
	logger.Debug("parsed cave", "structures", len(c.Rocks), "bounds", c.Bounds(), "depth", c.Depth())

	part1 := c.Fill()
	logger.Debug("filled cave", "sand", part1)
	logger.Debugf("cave without floor:\n%+v", c)

	c.Reset()
	c.AddFloor()
	part2 := c.Fill()
	logger.Debug("filled cave", "sand", part2, "floor", c.HasFloor(), "bounds", c.Grid().Bounds())

	printAnswers(cmd, part1, part2)
	return nil
}
