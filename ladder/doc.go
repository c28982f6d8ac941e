// Package ladder finds shortest word ladders: sequences of words in which
// each word differs from the previous one by a single character insertion,
// deletion or substitution.
//
// The search is a breadth-first walk (package bfs) over an implicit graph
// whose vertices are the dictionary words plus the begin word. Neighbors are
// computed on demand by scanning dictionary words of adjacent length with
// EditDistanceWithin, and are visited in lexicographic order so that ties
// between equally short ladders always resolve the same way.
//
// Quirks kept on purpose:
//
//   - Generate(w, w, dict) returns nil. Callers wanting a one-word ladder for
//     equal words must special-case it.
//   - EditDistanceWithin is a greedy single-pass scan, not Levenshtein.
//
// Example:
//
//	dict := ladder.NewDictionary("cat", "bat", "bet", "bot", "bog", "dog")
//	fmt.Println(ladder.Generate("cat", "dog", dict))
//	// [cat bat bot bog dog]
package ladder
