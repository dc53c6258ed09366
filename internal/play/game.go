package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/treechess/treechess/pkg/common"
)

type IEngine interface {
	ChooseMove(ctx context.Context, p common.Position) (common.Move, error)
}

var ErrGameOver = errors.New("game over")

// Game alternates human moves and engine replies on one board.
type Game struct {
	engine    IEngine
	positions []common.Position
	succMove  bool
	lastReply common.Move
}

func NewGame(engine IEngine) *Game {
	return NewGameFrom(engine, common.NewInitialPosition())
}

func NewGameFrom(engine IEngine, p common.Position) *Game {
	return &Game{
		engine:    engine,
		positions: []common.Position{p},
	}
}

func (g *Game) Position() *common.Position {
	return &g.positions[len(g.positions)-1]
}

func (g *Game) Codes() [64]uint32 {
	return g.Position().Encode()
}

// Over reports whether the side to move has lost.
func (g *Game) Over() bool {
	var p = g.Position()
	if p.Status == common.Ongoing {
		p.LegalMoves()
	}
	return p.Status != common.Ongoing
}

func (g *Game) Result() string {
	if !g.Over() {
		return "*"
	}
	if winner, _ := g.Position().Status.Winner(); winner == common.White {
		return "1-0"
	}
	return "0-1"
}

// MakeMove plays a human move. Requests after the game is won and illegal
// requests leave the board unchanged.
func (g *Game) MakeMove(start, end common.Square, promotion common.Piece) [64]uint32 {
	g.succMove = false
	if g.Over() {
		return g.Codes()
	}
	var cur = g.Position()
	var next = cur.Update(start, end, promotion)
	if next.Ply != cur.Ply {
		g.positions = append(g.positions, next)
		g.succMove = true
	}
	return g.Codes()
}

// Respond lets the engine answer the last successful human move.
func (g *Game) Respond(ctx context.Context) ([64]uint32, error) {
	if !g.succMove {
		return g.Codes(), nil
	}
	g.succMove = false
	if g.Over() {
		return g.Codes(), ErrGameOver
	}
	var move, err = g.engine.ChooseMove(ctx, *g.Position())
	if err != nil {
		return g.Codes(), err
	}
	var next = *g.Position()
	next.MakeMove(move)
	g.positions = append(g.positions, next)
	g.lastReply = move
	return g.Codes(), nil
}

// parseCommand reads e2e4 or e7e8q. The promotion letter goes through the
// same validation as any external selector.
func parseCommand(s string) (start, end common.Square, promotion common.Piece, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return common.SquareNone, common.SquareNone, common.NoPiece,
			fmt.Errorf("%w: %q", common.ErrInvalidMove, s)
	}
	start, err = common.ParseSquare(s[0:2])
	if err != nil {
		return
	}
	end, err = common.ParseSquare(s[2:4])
	if err != nil {
		return
	}
	if len(s) == 5 {
		var selector = strings.IndexByte(" rnbkqp", s[4])
		promotion, err = common.ParsePromotion(selector)
	}
	return
}

// Handler feeds console commands to a Game.
type Handler struct {
	Game *Game
	Out  io.Writer
}

func (h *Handler) Handle(ctx context.Context, command string) error {
	var start, end, promotion, err = parseCommand(command)
	if err != nil {
		return err
	}
	if h.Game.Over() {
		fmt.Fprintln(h.Out, "game over", h.Game.Result())
		return nil
	}
	var codes = h.Game.MakeMove(start, end, promotion)
	if !h.Game.succMove {
		fmt.Fprintln(h.Out, "illegal move")
		return nil
	}
	Print(h.Out, codes)
	codes, err = h.Game.Respond(ctx)
	if errors.Is(err, ErrGameOver) {
		fmt.Fprintln(h.Out, "game over", h.Game.Result())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(h.Out, h.Game.lastReply)
	Print(h.Out, codes)
	if h.Game.Over() {
		fmt.Fprintln(h.Out, "game over", h.Game.Result())
	}
	return nil
}
