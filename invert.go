package cuberobot

// InvertMoves returns the sequence that undoes moves: the moves in reverse
// order, each one inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Invert returns the inverse of a move sequence in concatenated form.
//
//	Invert("RU")   == "U'R'"
//	Invert("R2F'") == "FR2"
//
// The whole input is validated first; a stray modifier or unknown character
// fails with ErrInvalidMoveSequence and nothing is returned.
func Invert(moves string) (string, error) {
	parsed, err := ParseMoves(moves)
	if err != nil {
		return "", err
	}
	return CompactMoves(InvertMoves(parsed)), nil
}
