package render

import (
	"fmt"
	"strings"
)

// PlainText flattens a card into a multi-line text block for surfaces that
// cannot display structured cards (the CLI, overflow fallback).
func (c *Card) PlainText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", c.Title)
	if c.URL != "" {
		fmt.Fprintf(&b, "<%s>\n", c.URL)
	}
	if c.Description != "" {
		b.WriteString("\n")
		b.WriteString(c.Description)
		b.WriteString("\n")
	}
	for _, s := range c.Sections {
		fmt.Fprintf(&b, "\n__**%s**__\n%s\n", s.Name, s.Value)
	}
	if c.Footer != "" {
		b.WriteString("\n")
		b.WriteString(c.Footer)
	}
	return b.String()
}
