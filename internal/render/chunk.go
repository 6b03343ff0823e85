package render

import "strings"

// Chunk splits text into pieces of at most limit characters without breaking
// mid-line. A single line longer than limit is emitted on its own, over
// the limit, rather than dropped or split.
func Chunk(text string, limit int) []string {
	lines := strings.Split(text, "\n")

	var chunks []string
	var cur strings.Builder
	for _, line := range lines {
		if cur.Len() == 0 {
			cur.WriteString(line)
			continue
		}
		if cur.Len()+1+len(line) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
			cur.WriteString(line)
			continue
		}
		cur.WriteString("\n")
		cur.WriteString(line)
	}
	return append(chunks, cur.String())
}
