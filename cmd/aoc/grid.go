package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deedles.dev/aoc2022/geom"
)

var flagMark string

var gridCmd = &cobra.Command{
	Use:   "grid <input>",
	Short: "Plot points onto a grid",
	Long: `Reads one x,y point per line and prints a grid with every point
marked. Rows and every fifth column are labelled with their
coordinates.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().StringVar(&flagMark, "mark", "#", "Character used to mark points")
}

func runGrid(cmd *cobra.Command, args []string) error {
	mark := []rune(flagMark)
	if len(mark) != 1 {
		return fmt.Errorf("mark must be a single character, not %q", flagMark)
	}

	file, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	var g *geom.Grid[rune]
	s := bufio.NewScanner(file)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		p, err := geom.ParsePoint[int](text)
		if err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}

		if g == nil {
			g, err = geom.GridWithCoordinates(geom.Rt(p, p.Add(geom.Pt(1, 1))), '.')
			if err != nil {
				return fmt.Errorf("line %v: %w", line, err)
			}
		}
		if grown := g.SetOrInsert(p.X, p.Y, mark[0]); grown != geom.EdgeNone {
			logger.Debug("grew grid", "point", p, "edges", grown, "bounds", g.Bounds())
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read points: %w", err)
	}
	if g == nil {
		return fmt.Errorf("no points in %v", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%+v", g)
	return nil
}
