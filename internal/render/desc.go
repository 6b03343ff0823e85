package render

import "strings"

// NoDescription is emitted when nothing in the source text survives the
// description filters.
const NoDescription = "No description available."

// boilerplateKeywords mark sentence fragments that are stat lines rather
// than descriptive prose.
var boilerplateKeywords = []string{
	"source", "price", "bulk", "hands", "damage", "category", "group",
	"type", "level", "rarity", "favored weapon", "specific magic",
	"critical specialization",
}

// MainDescription extracts the descriptive prose from normalized text: split
// into sentence-like units, drop short or boilerplate-laden units, keep the
// first two. Never returns an empty string.
func MainDescription(text string) string {
	var kept []string
	for _, unit := range strings.Split(text, ".") {
		unit = strings.TrimSpace(unit)
		if len(unit) <= 15 {
			continue
		}
		if containsBoilerplate(unit) {
			continue
		}
		kept = append(kept, unit)
		if len(kept) == 2 {
			break
		}
	}
	if len(kept) == 0 {
		return NoDescription
	}
	desc := strings.Join(kept, ". ")
	if !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	return Truncate(desc, DescriptionLimit)
}

func containsBoilerplate(unit string) bool {
	lower := strings.ToLower(unit)
	for _, keyword := range boilerplateKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
