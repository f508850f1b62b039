package board

import "fmt"

const Size = 8

// ParseCoord converts an algebraic square such as "e2" into zero-based
// (file, rank) indices. Rank '8' maps to index 0 and rank '1' to index 7.
// Length is counted in characters, so "é" is too short rather than off the board.
func ParseCoord(text string) (file, rank int, err error) {
	chars := []rune(text)
	if len(chars) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLength, text)
	}

	file = int(chars[0] - 'a')
	rank = int('8' - chars[1])
	if !inBounds(file) || !inBounds(rank) {
		return 0, 0, fmt.Errorf("%w: %q", ErrOutOfBounds, text)
	}

	return file, rank, nil
}

// Square returns the algebraic name of the zero-based (file, rank) pair,
// or "" when either index is off the board.
func Square(file, rank int) string {
	if !inBounds(file) || !inBounds(rank) {
		return ""
	}
	return fmt.Sprintf("%c%c", 'a'+file, '8'-rank)
}

func inBounds(i int) bool {
	return i >= 0 && i < Size
}
