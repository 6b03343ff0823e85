// Package nethys talks to the Archives of Nethys Elasticsearch index and
// normalizes its hits into flat records.
package nethys

import (
	"fmt"
	"strings"
)

// Categories is the closed set of category filters the index understands.
var Categories = []string{
	"Equipment", "Spell", "Feat", "Class", "Ancestry", "Background",
	"Monster", "Hazard", "Rule", "Condition", "Trait", "Action",
}

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// ValidCategory reports whether name is a known category or the sentinel.
// The empty string is accepted and treated as "All".
func ValidCategory(name string) bool {
	if name == "" || strings.EqualFold(name, CategoryAll) {
		return true
	}
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Record is one normalized hit. Name is always present; everything else may
// be empty and consumers must degrade to placeholders.
type Record struct {
	Name     string
	Type     string
	Category string
	URL      string
	Text     string
	Level    *int
	Price    string
	Source   string
	Rarity   string
	Traits   []string
}

// hitSource mirrors the _source projection requested from the index. Price
// and source have unstable shapes, so they decode loosely and are fixed up
// in newRecord.
type hitSource struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	URL      string   `json:"url"`
	Text     string   `json:"text"`
	Level    *int     `json:"level"`
	Price    any      `json:"price"`
	Category string   `json:"category"`
	Source   any      `json:"source"`
	Rarity   string   `json:"rarity"`
	Traits   []string `json:"trait_raw"`
}

func newRecord(src hitSource, webBase string) Record {
	name := src.Name
	if name == "" {
		name = "Unknown"
	}
	return Record{
		Name:     name,
		Type:     src.Type,
		Category: src.Category,
		URL:      absoluteURL(src.URL, webBase),
		Text:     src.Text,
		Level:    src.Level,
		Price:    priceString(src.Price),
		Source:   sourceString(src.Source),
		Rarity:   src.Rarity,
		Traits:   src.Traits,
	}
}

// absoluteURL joins a relative index path onto the public site base.
func absoluteURL(url, webBase string) string {
	if url == "" || strings.HasPrefix(url, "http") {
		return url
	}
	return strings.TrimSuffix(webBase, "/") + "/" + strings.TrimPrefix(url, "/")
}

// sourceString collapses the index's string-or-list source field to a single
// display string, taking the first element of a list.
func sourceString(source any) string {
	switch v := source.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}

// priceString renders the price field. A numeric price is in copper pieces
// and becomes "X gp Y sp Z cp"; anything else passes through verbatim.
func priceString(price any) string {
	switch v := price.(type) {
	case string:
		return v
	case float64:
		return formatCopper(int(v))
	}
	return ""
}

func formatCopper(cp int) string {
	if cp <= 0 {
		return ""
	}
	var parts []string
	if gp := cp / 100; gp > 0 {
		parts = append(parts, fmt.Sprintf("%d gp", gp))
	}
	if sp := (cp % 100) / 10; sp > 0 {
		parts = append(parts, fmt.Sprintf("%d sp", sp))
	}
	if rest := cp % 10; rest > 0 {
		parts = append(parts, fmt.Sprintf("%d cp", rest))
	}
	return strings.Join(parts, " ")
}
