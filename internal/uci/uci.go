// Package uci drives a Runner from UCI protocol lines.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
)

const (
	EngineName   = "Chess-Challenge"
	EngineAuthor = "AcrylicShrimp"
)

// UciRunner reports protocol problems on Logger. Search output goes to the
// Runner's own logger.
type UciRunner struct {
	Runner *Runner
	Logger Logger
}

func NewUciRunner(runner *Runner) *UciRunner {
	return &UciRunner{Runner: runner, Logger: DefaultLogger}
}

func parseFen(input string) (string, Error) {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.TrimSpace(strings.Split(s, " moves")[0]), NilError
	} else if strings.HasPrefix(s, "startpos") {
		return rules.StartFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parsePosition(input string) (Position, Error) {
	fen, err := parseFen(input)
	if !IsNil(err) {
		return Position{}, err
	}
	return Position{Fen: fen, Moves: parseMoves(input)}, NilError
}

// HandleInput returns the lines to send back for one line of input.
func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	input = strings.TrimSpace(input)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, NilError
	}

	result := []string{}
	switch fields[0] {
	case "uci":
		result = append(result, "id name "+EngineName)
		result = append(result, "id author "+EngineAuthor)
		result = append(result, "uciok")
	case "ucinewgame":
		if len(u.Runner.MoveHistory()) > 0 {
			u.Logger.Println("previous game:", u.Runner.PgnFromMoveHistory())
		}
		u.Runner.Reset()
	case "isready":
		result = append(result, "readyok")
	case "position":
		position, err := parsePosition(input)
		if !IsNil(err) {
			return result, err
		}
		err = u.Runner.PerformMoves(position.Fen, position.Moves)
		if !IsNil(err) {
			return result, err
		}
	case "go":
		limits, err := ParseLimits(fields[1:])
		if !IsNil(err) {
			return result, err
		}
		move, err := u.Runner.Search(limits)
		if !IsNil(err) {
			return result, err
		}
		result = append(result, fmt.Sprintf("bestmove %v", move.Value()))
	case "stop", "ponderhit", "setoption", "debug", "register":
		// searches are synchronous and there are no options
	default:
		u.Logger.Println("unknown command:", input)
	}
	return result, NilError
}

// Run answers commands from in on out until "quit" or end of input. Errors
// are logged and the session continues.
func (u *UciRunner) Run(in io.Reader, out io.Writer) Error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := scanner.Text()
		if strings.TrimSpace(input) == "quit" {
			break
		}

		result, err := u.HandleInput(input)
		if !IsNil(err) {
			u.Logger.Println("error:", err)
			continue
		}

		for _, line := range result {
			_, writeErr := fmt.Fprintln(out, line)
			if writeErr != nil {
				return Wrap(writeErr)
			}
		}
	}
	return Wrap(scanner.Err())
}
