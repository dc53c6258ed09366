package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/treechess/treechess/pkg/common"
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	positions    []common.Position
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
	logger       zerolog.Logger
	in           io.Reader
	out          io.Writer
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		options:   options,
		positions: []common.Position{common.NewInitialPosition()},
		logger:    zerolog.Nop(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

func (uci *Protocol) Run(logger zerolog.Logger) {
	uci.logger = logger
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(uci.in, commands)
	}()

	var searchResult common.SearchInfo
	for {
		select {
		case si, ok := <-uci.engineOutput:
			if ok {
				fmt.Fprintln(uci.out, searchInfoToUci(si))
				searchResult = si
			} else {
				uci.bestMove(searchResult)
				searchResult = common.SearchInfo{}
			}
		case commandLine, ok := <-commands:
			if !ok {
				//uci quit
				if uci.thinking {
					uci.cancel()
					for si := range uci.engineOutput {
						searchResult = si
					}
					uci.bestMove(searchResult)
				}
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				uci.logger.Warn().Err(err).Str("command", commandLine).Msg("uci")
			}
		}
	}
}

func (uci *Protocol) bestMove(si common.SearchInfo) {
	if len(si.MainLine) != 0 {
		fmt.Fprintf(uci.out, "bestmove %v\n", si.MainLine[0])
	} else {
		fmt.Fprintln(uci.out, "bestmove 0000")
	}
	uci.thinking = false
	uci.cancel = nil
	uci.engineOutput = nil
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			uci.cancel()
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		return nil
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = common.ParseFEN(fen)
	if err != nil {
		return err
	}
	var positions = []common.Position{p}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			var newPos = positions[len(positions)-1]
			var move, err = common.ParseMoveLAN(&newPos, smove)
			if err != nil {
				return err
			}
			newPos.MakeMove(move)
			positions = append(positions, newPos)
		}
	}
	uci.positions = positions
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(context.Background())
	uci.cancel = cancel
	uci.thinking = true
	var output = make(chan common.SearchInfo, 3)
	uci.engineOutput = output
	var positions = uci.positions
	var logger = uci.logger
	go func() {
		defer cancel()
		var searchResult, err = uci.engine.Search(ctx, common.SearchParams{
			Positions: positions,
			Limits:    limits,
			Progress: func(si common.SearchInfo) {
				select {
				case output <- si:
				default:
				}
			},
		})
		if err != nil {
			logger.Error().Err(err).Msg("search failed")
		}
		output <- searchResult
		close(output)
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	var timeMs = si.Time.Milliseconds()
	var nps = int64(si.Iterations) * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, "info score cp %v nodes %v time %v nps %v",
		int(si.Confidence*100), si.Iterations, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result common.LimitsType) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "nodes":
			if i+1 < len(args) {
				result.Iterations, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				result.MoveTime, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				result.WhiteTime, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "btime":
			if i+1 < len(args) {
				result.BlackTime, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "winc":
			if i+1 < len(args) {
				result.WhiteIncrement, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "binc":
			if i+1 < len(args) {
				result.BlackIncrement, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movestogo":
			if i+1 < len(args) {
				result.MovesToGo, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "infinite":
			result.Infinite = true
		}
	}
	return
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
