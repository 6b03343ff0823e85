// Package stats derives structured weapon statistics from the unstructured
// prose returned by the Archives of Nethys index. Every field is extracted by
// an ordered list of patterns tried until one matches; a miss is silent and
// leaves the field empty for the renderer to replace with a placeholder.
package stats

import (
	"regexp"
	"strings"
)

// DefaultDamageType is applied when a damage die is found but its type
// cannot be determined. Historically the bot assumed slashing; callers that
// know better can pass their own default to ExtractWithDefault.
const DefaultDamageType = "slashing"

// Weapon holds the stats pulled out of a normalized text blob. Empty fields
// mean the corresponding pattern never matched.
type Weapon struct {
	Damage string
	Bulk   string
	Hands  string
	Group  string
	Type   string
}

var (
	damagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+d\d+(?:\+\d+)?)\s+(slashing|piercing|bludgeoning|s|p|b)\b`),
		regexp.MustCompile(`(?i)damage\s+(\d+d\d+(?:\+\d+)?)(?:\s+(\w+))?`),
	}
	bulkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bulk\s+([0-9]+|L|-)`),
		regexp.MustCompile(`(?i)bulk: ?([0-9]+|L|-)`),
	}
	handsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)hands?\s+(\d+)`),
		regexp.MustCompile(`(?i)hands?: ?(\d+)`),
	}
	groupPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)group\s+(\w+)`),
		regexp.MustCompile(`(?i)weapon\s+group: ?(\w+)`),
	}
	// The capital T keeps this from matching prose like "damage type".
	typePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bType\s+(\w+)`),
		regexp.MustCompile(`(?i)weapon\s+type: ?(\w+)`),
	}
)

var damageTypeNames = map[string]string{
	"s": "slashing",
	"p": "piercing",
	"b": "bludgeoning",
}

// Extract pulls all weapon stats from text using the historical slashing
// default for untyped damage.
func Extract(text string) Weapon {
	return ExtractWithDefault(text, DefaultDamageType)
}

// ExtractWithDefault is Extract with an explicit fallback damage type.
func ExtractWithDefault(text, fallbackType string) Weapon {
	return Weapon{
		Damage: ExtractDamage(text, fallbackType),
		Bulk:   firstMatch(bulkPatterns, text),
		Hands:  ExtractHands(text),
		Group:  strings.ToLower(firstMatch(groupPatterns, text)),
		Type:   strings.ToLower(firstMatch(typePatterns, text)),
	}
}

// ExtractDamage finds a dice expression with its damage type, expanding the
// single-letter abbreviations. An empty string means no damage was found.
func ExtractDamage(text, fallbackType string) string {
	for _, re := range damagePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		die := m[1]
		typ := strings.ToLower(m[2])
		if full, ok := damageTypeNames[typ]; ok {
			typ = full
		}
		if typ == "" {
			typ = fallbackType
		}
		return die + " " + typ
	}
	return ""
}

// ExtractHands returns the hand count, inferring "2" for two-handed weapons
// and "1" otherwise when the text never states a count.
func ExtractHands(text string) string {
	if h := firstMatch(handsPatterns, text); h != "" {
		return h
	}
	if strings.Contains(strings.ToLower(text), "two-hand") {
		return "2"
	}
	return "1"
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// traitVocabulary is the closed set of weapon trait keywords recognized in
// prose. Versatile is handled separately because it carries a damage type.
var traitVocabulary = []string{
	"agile", "backswing", "deadly", "disarm", "fatal", "finesse", "forceful",
	"free-hand", "grapple", "monk", "nonlethal", "parry", "propulsive",
	"ranged", "reach", "shove", "sweep", "thrown", "trip", "twin",
	"two-hand", "unarmed", "volley",
}

var versatileInText = regexp.MustCompile(`(?i)\bversatile\s*[-(]?\s*([psb])\b`)

// ExtractTraits scans text for known trait keywords, deduplicated in
// first-seen order. A versatile match folds its damage letter in as
// "Versatile P" style.
func ExtractTraits(text string) []string {
	lower := strings.ToLower(text)
	var traits []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			traits = append(traits, t)
		}
	}

	if m := versatileInText.FindStringSubmatch(text); m != nil {
		add("Versatile " + strings.ToUpper(m[1]))
	}
	for _, word := range traitVocabulary {
		if idx := strings.Index(lower, word); idx >= 0 && isWordBoundary(lower, idx, len(word)) {
			add(titleCase(word))
		}
	}
	return traits
}

func isWordBoundary(s string, start, length int) bool {
	before := start == 0 || !isWordChar(s[start-1])
	end := start + length
	after := end >= len(s) || !isWordChar(s[end])
	return before && after
}

func isWordChar(b byte) bool {
	return b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
