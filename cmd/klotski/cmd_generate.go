package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/klotski/internal/generator"
	"svw.info/klotski/internal/geom"
)

var (
	generateOutput       string
	generateSize         string
	generateBlockCount   int8
	generateShuffleRound int
	generateSeed         int64
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random solvable board",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := generate(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandGenerate.Flags().StringVarP(&generateOutput, "output", "o", "", "path to the output file, default to stdout")
	commandGenerate.Flags().StringVarP(&generateSize, "size", "s", "", "board size as cols,rows (e.g. 4,5)")
	commandGenerate.Flags().Int8VarP(&generateBlockCount, "block-count", "n", 0, "at most how many blocks to generate")
	commandGenerate.Flags().IntVar(&generateShuffleRound, "shuffle-round", 8, "at most how many random moves to shuffle with")
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "random seed, default to current time")
	_ = commandGenerate.MarkFlagRequired("size")
	_ = commandGenerate.MarkFlagRequired("block-count")
	mainCommand.AddCommand(commandGenerate)
}

// parseVec2 reads "x,y" into a coordinate, e.g. "4,2".
func parseVec2(input string) (geom.Vec2, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return geom.Vec2{}, fmt.Errorf("size should be 2 comma-delimited numbers, e.g. 4,2")
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("cannot parse x: %w", err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("cannot parse y: %w", err)
	}
	return geom.V(int8(x), int8(y)), nil
}

func generate() error {
	size, err := parseVec2(generateSize)
	if err != nil {
		return err
	}
	if size.X <= 0 || size.Y <= 0 || generateBlockCount <= 0 {
		return fmt.Errorf("size and block count must be positive")
	}
	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, stats, err := generator.New().Generate(context.Background(), seed, size, generateBlockCount, generateShuffleRound)
	if err != nil {
		return err
	}
	logrus.Debugf("generate: seed %d, %d shuffle moves applied", seed, stats.Nodes)

	out, closeOut, _, err := openOutput(generateOutput)
	if err != nil {
		return err
	}
	fmt.Fprint(out, p.Board)
	return closeOut()
}
