package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/ports"
	"svw.info/klotski/internal/search"
)

var (
	solveInput     string
	solveOutput    string
	solveAlgorithm string
	solveTimeout   time.Duration
)

var commandSolve = &cobra.Command{
	Use:   "solve",
	Short: "Search an optimal solution for a board file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := solve(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandSolve.Flags().StringVarP(&solveInput, "input", "i", "", "path to the input board file")
	commandSolve.Flags().StringVarP(&solveOutput, "output", "o", "", "path to the output file, default to stdout")
	commandSolve.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", "iddfs", "algorithm to use (iddfs|idastar)")
	commandSolve.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this duration (0 = unbounded)")
	_ = commandSolve.MarkFlagRequired("input")
	mainCommand.AddCommand(commandSolve)
}

func newSolver(name string) (ports.Solver, error) {
	switch name {
	case "iddfs":
		return search.NewIDDFS(), nil
	case "idastar", "ida*":
		return search.NewIDAStar(), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q, expected iddfs or idastar", name)
}

// openOutput returns the output writer and whether it is a terminal-facing
// stdout (color allowed).
func openOutput(path string) (io.Writer, func() error, bool, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, true, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, false, err
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			return err
		}
		return f.Close()
	}, false, nil
}

func solve() error {
	content, err := os.ReadFile(solveInput)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	b, err := board.Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse board: %w", err)
	}
	solver, err := newSolver(solveAlgorithm)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	out, closeOut, colored, err := openOutput(solveOutput)
	if err != nil {
		return err
	}

	moves, stats, err := solver.Solve(ctx, b)
	if errors.Is(err, search.ErrNoSolution) {
		fmt.Fprintln(out, "no solution")
		return closeOut()
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	writeSolution(out, colored, moves, stats)
	return closeOut()
}

func writeSolution(out io.Writer, colored bool, moves []board.Move, stats ports.Stats) {
	headline := fmt.Sprintf("An optimal solution has %d moves:", len(moves))
	fmt.Fprintf(out, "Total run time = %.4f seconds.\n", stats.Duration.Seconds())
	if colored {
		fmt.Fprintln(out, aurora.Green(headline))
	} else {
		fmt.Fprintln(out, headline)
	}
	for i, m := range moves {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, m)
	}
	fmt.Fprintln(out)
	logrus.Debugf("solve: %d nodes expanded", stats.Nodes)
}
