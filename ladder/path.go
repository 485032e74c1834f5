package ladder

import "slices"

// Reconstruct walks the predecessor map from end until a word without a
// predecessor is reached, and returns the words in start-to-end order.
// A word absent from the map yields the single-element path [end].
func Reconstruct(parent map[string]string, end string) []string {
	path := []string{end}
	for cur := end; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
