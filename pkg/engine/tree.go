package engine

import (
	"errors"
	"math"

	. "github.com/treechess/treechess/pkg/common"
)

var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrNoDescent          = errors.New("no child to descend into")
	ErrNoMoves            = errors.New("no legal moves")
)

const nilNode int32 = -1

// node results are accumulated from the point of view of the side to move at the node.
type node struct {
	position    Position
	move        Move
	parent      int32
	firstChild  int32
	lastChild   int32
	nextSibling int32
	nChildren   int32
	movesStart  int32
	movesLen    int32
	initialized bool
	visits      int
	result      float64
}

func (n *node) mean() float64 {
	return n.result / float64(n.visits)
}

// tree stores nodes in one slice addressed by index; the root is node 0.
type tree struct {
	nodes     []node
	moves     []Move
	path      []int32
	evaluator Evaluator
	beta      float64
}

func (t *tree) reset(p Position) {
	t.nodes = t.nodes[:0]
	t.moves = t.moves[:0]
	t.nodes = append(t.nodes, node{
		position:    p,
		move:        MoveEmpty,
		parent:      nilNode,
		firstChild:  nilNode,
		lastChild:   nilNode,
		nextSibling: nilNode,
		visits:      1,
		result:      t.evaluator.Evaluate(&p, p.SideToMove()),
	})
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// init generates the legal moves of a node. A node without moves becomes terminal.
func (t *tree) init(idx int32) {
	var n = &t.nodes[idx]
	if n.initialized {
		return
	}
	n.initialized = true
	var start = len(t.moves)
	t.moves = n.position.GenerateLegalMoves(t.moves)
	n.movesStart = int32(start)
	n.movesLen = int32(len(t.moves) - start)
	if n.movesLen == 0 && n.position.Status == Ongoing {
		n.position.Status = Won(n.position.SideToMove().Opposite())
	}
}

func (t *tree) nodeMoves(n *node) []Move {
	return t.moves[n.movesStart : n.movesStart+n.movesLen]
}

// expand walks one path from the root, grows or scores its end and backs the result up.
func (t *tree) expand() error {
	t.path = append(t.path[:0], 0)
	var cur int32 = 0
	var delta float64
	var err error

	for {
		var n = &t.nodes[cur]

		// lazy init on the first step through a node
		if n.visits == 1 {
			t.init(cur)
			n = &t.nodes[cur]
		}

		if n.position.Status != Ongoing {
			var winner, ok = n.position.Status.Winner()
			if !ok {
				return ErrInvariantViolation
			}
			if winner == n.position.SideToMove() {
				delta = 1
			} else {
				delta = -1
			}
			break
		}

		if n.nChildren < n.movesLen {
			var child = t.grow(cur)
			delta = -t.nodes[child].result
			break
		}

		var best = t.selectChild(cur)
		if best == nilNode {
			delta = 0
			err = ErrNoDescent
			break
		}
		t.path = append(t.path, best)
		cur = best
	}

	for i := len(t.path) - 1; i >= 0; i-- {
		var n = &t.nodes[t.path[i]]
		n.visits++
		n.result += delta
		delta = -delta
	}
	return err
}

// grow materializes the next untried move of parent as a child with one visit.
func (t *tree) grow(parent int32) int32 {
	var pn = &t.nodes[parent]
	var m = t.moves[pn.movesStart+pn.nChildren]
	var child = pn.position
	child.MakeMove(m)

	var idx = int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		position:    child,
		move:        m,
		parent:      parent,
		firstChild:  nilNode,
		lastChild:   nilNode,
		nextSibling: nilNode,
		visits:      1,
		result:      t.evaluator.Evaluate(&child, child.SideToMove()),
	})

	pn = &t.nodes[parent]
	if pn.lastChild == nilNode {
		pn.firstChild = idx
	} else {
		t.nodes[pn.lastChild].nextSibling = idx
	}
	pn.lastChild = idx
	pn.nChildren++
	return idx
}

// selectChild returns the child with the highest finite positive upper
// confidence bound. The parent visit of the current step is already counted.
func (t *tree) selectChild(parent int32) int32 {
	var parentVisits = float64(t.nodes[parent].visits + 1)
	var best = nilNode
	var bestScore = 0.0
	for c := t.nodes[parent].firstChild; c != nilNode; c = t.nodes[c].nextSibling {
		var child = &t.nodes[c]
		var score = (1 - child.mean()) +
			t.beta*math.Sqrt(2*math.Log(parentVisits)/float64(child.visits))
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// bestChild returns the child with the lowest mean; earlier children win ties.
func (t *tree) bestChild(parent int32) int32 {
	var best = nilNode
	var bestMean = math.Inf(1)
	for c := t.nodes[parent].firstChild; c != nilNode; c = t.nodes[c].nextSibling {
		if mean := t.nodes[c].mean(); mean < bestMean {
			bestMean = mean
			best = c
		}
	}
	return best
}

func (t *tree) mainLine() []Move {
	var result []Move
	for cur := t.bestChild(0); cur != nilNode; cur = t.bestChild(cur) {
		result = append(result, t.nodes[cur].move)
	}
	return result
}
