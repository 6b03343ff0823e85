// Package render turns normalized search records into chat-ready output:
// either a structured card with titled sections or a plain text block, both
// bounded to the platform's length limits.
package render

// Platform length limits. Truncation happens after all extraction and
// formatting, on rune boundaries.
const (
	// MessageLimit caps one plain-text message.
	MessageLimit = 2000
	// SectionLimit bounds one named card section value.
	SectionLimit = 1024
	// DescriptionLimit bounds a card description.
	DescriptionLimit = 4096
)

// Rarity embed colors.
const (
	ColorDefault  = 0x000000
	ColorUncommon = 0x3498db
	ColorRare     = 0x9b59b6
	ColorUnique   = 0xf1c40f
)

// Output is one rendered result: a card when structured display is possible,
// otherwise a plain text block. Exactly one of the two is set.
type Output struct {
	Text string
	Card *Card
}

// Card is a platform-neutral structured message with titled sections.
type Card struct {
	Title       string
	URL         string
	Description string
	Sections    []Section
	Footer      string
	Color       int
}

// Section is one named, ordered card field.
type Section struct {
	Name   string
	Value  string
	Inline bool
}

func (c *Card) addSection(name, value string, inline bool) {
	c.Sections = append(c.Sections, Section{Name: name, Value: value, Inline: inline})
}
