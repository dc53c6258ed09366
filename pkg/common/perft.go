package common

// Perft counts the leaf nodes of the legal move tree to depth.
func Perft(p *Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	var buffer [MaxMoves]Move
	var ml = p.GenerateLegalMoves(buffer[:0])
	if depth == 1 {
		return len(ml)
	}
	var result = 0
	for _, m := range ml {
		var child = *p
		child.MakeMove(m)
		result += Perft(&child, depth-1)
	}
	return result
}

// PerftDivide returns the perft count below each root move, keyed by move text.
func PerftDivide(p *Position, depth int) map[string]int {
	var result = make(map[string]int)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateLegalMoves(nil) {
		var child = *p
		child.MakeMove(m)
		result[m.String()] = Perft(&child, depth-1)
	}
	return result
}
