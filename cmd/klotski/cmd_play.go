package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/geom"
)

var playInput string

var commandPlay = &cobra.Command{
	Use:   "play",
	Short: "Play a board interactively",
	Long:  "Play a board interactively. Enter moves as <id><direction>, e.g. 5L. EOF quits.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := play(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandPlay.Flags().StringVarP(&playInput, "input", "i", "", "path to the input board file")
	_ = commandPlay.MarkFlagRequired("input")
	mainCommand.AddCommand(commandPlay)
}

// parseCommand reads a move like "5L" or "12d".
func parseCommand(cmd string) (board.Move, error) {
	if cmd == "" {
		return board.Move{}, fmt.Errorf("empty command")
	}
	dir, err := geom.ParseDir(cmd[len(cmd)-1])
	if err != nil {
		return board.Move{}, err
	}
	id, err := strconv.ParseInt(cmd[:len(cmd)-1], 10, 8)
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid id: %w", err)
	}
	return board.Move{ID: int8(id), Dir: dir}, nil
}

func play() error {
	content, err := os.ReadFile(playInput)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	b, err := board.Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse board: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	taken := 0
	fmt.Fprint(os.Stderr, b)
	for {
		moves := b.PossibleMoves()
		tokens := make([]string, 0, len(moves))
		for _, m := range moves {
			tokens = append(tokens, m.String())
		}
		fmt.Fprintln(os.Stderr, "Possible moves:", strings.Join(tokens, " "))
		fmt.Fprint(os.Stderr, "Enter a move: ")
		if !scanner.Scan() {
			break
		}
		m, err := parseCommand(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid command:", err)
			continue
		}
		if err := b.MoveBlock(m.ID, m.Dir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		taken++
		fmt.Fprint(os.Stderr, b)
		if b.IsGoal() {
			fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("Reached the goal in %d moves", taken)))
			break
		}
	}
	return scanner.Err()
}
