package game

// GameMove is either a placement on Pos or, when Pass is set, a pass by a
// side that has no legal placement while its opponent still has one.
type GameMove struct {
	Pos  Position
	Pass bool
}

func PassMove() GameMove {
	return GameMove{Pass: true}
}

func (m GameMove) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Pos.String()
}
