package pgn

const (
	GameResultNone     = "*"
	GameResultWhiteWin = "1-0"
	GameResultBlackWin = "0-1"
)

type Tag struct {
	Key   string
	Value string
}

// Game is a finished or adjudicated game: a starting FEN, moves in long
// algebraic notation and the result as decided by our rules.
type Game struct {
	Tags   []Tag
	Fen    string
	Moves  []string
	Result string
}
