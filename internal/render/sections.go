package render

import (
	"regexp"
	"strings"
	"sync"
)

// boundaryPattern terminates a labeled capture. The keyword list is derived
// from observed index text shapes; capture past it is best effort only.
const boundaryPattern = `(?:---|\b(?:Source|Price|Level|Bulk|Hands|Damage|Category|Group|Type|Access|Trigger|Requirements|Favored Weapon|Specific Magic|Critical Specialization|Critical Success|Cast|Range|Targets|Duration|Traditions|Activation)\b)`

var (
	captureMu  sync.Mutex
	captureRes = make(map[string]*regexp.Regexp)
)

func captureRegexp(label string) *regexp.Regexp {
	captureMu.Lock()
	defer captureMu.Unlock()
	if re, ok := captureRes[label]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\b:?\s*(.*?)\s*(?:` + boundaryPattern + `|$)`)
	captureRes[label] = re
	return re
}

// CaptureAfter returns the run of text following the label phrase, up to the
// next recognized boundary keyword or separator. Captures shorter than two
// characters are treated as noise and dropped.
func CaptureAfter(label, text string) string {
	m := captureRegexp(label).FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	value := strings.TrimSpace(m[1])
	if len(value) < 2 {
		return ""
	}
	return value
}

// Truncate bounds s to limit characters, marking the cut with an ellipsis.
// It cuts on rune boundaries so a multi-byte character is never split.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func plural(word string) string {
	if strings.HasSuffix(word, "s") {
		return word
	}
	return word + "s"
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
