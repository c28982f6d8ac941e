package ladder

import "unicode/utf8"

// EditDistanceWithin reports whether a and b are within d single-character
// insertions, deletions or substitutions of each other, using one linear
// two-pointer scan over their runes.
//
// Steps:
//  1. If the rune-length difference exceeds d, fail fast.
//  2. Walk both words. On a mismatch count one difference and advance the
//     cursor of the longer word (insertion/deletion), or both cursors when
//     the lengths are equal (substitution). More than d differences → false.
//  3. Once either cursor reaches its end, succeed: the remaining tail is
//     covered by the length check of step 1.
//
// This is a greedy approximation, not Levenshtein distance. It can disagree
// with the true distance when insertions and substitutions mix, and it is
// kept as is: the ladder search only needs a consistent, symmetric relation.
//
// Complexity: O(len(a) + len(b)), no allocations.
func EditDistanceWithin(a, b string, d int) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if abs(la-lb) > d {
		return false
	}

	diff, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		ca, wa := utf8.DecodeRuneInString(a[i:])
		cb, wb := utf8.DecodeRuneInString(b[j:])
		if ca == cb {
			i, j = i+wa, j+wb
			continue
		}

		diff++
		if diff > d {
			return false
		}
		switch {
		case la > lb:
			i += wa
		case la < lb:
			j += wb
		default:
			i, j = i+wa, j+wb
		}
	}

	return true
}

// IsAdjacent reports whether two words are one edit apart (or equal) under
// EditDistanceWithin with d = 1.
func IsAdjacent(a, b string) bool {
	return EditDistanceWithin(a, b, 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
