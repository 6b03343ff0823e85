package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kayz/nethys/internal/markup"
	"github.com/kayz/nethys/internal/nethys"
	"github.com/kayz/nethys/internal/stats"
)

// Kind is the closed set of formatting strategies, resolved once from the
// record's type and category strings.
type Kind int

const (
	KindGeneric Kind = iota
	KindWeapon
	KindSpell
)

// KindOf picks the formatting strategy for a record. Matching is
// case-insensitive; anything unrecognized falls back to the generic card.
func KindOf(rec nethys.Record) Kind {
	typ := strings.ToLower(rec.Type)
	category := strings.ToLower(rec.Category)
	switch {
	case typ == "weapon" || category == "weapon":
		return KindWeapon
	case typ == "spell":
		return KindSpell
	default:
		return KindGeneric
	}
}

// Format renders one record into a card.
func Format(rec nethys.Record) Output {
	var card *Card
	switch KindOf(rec) {
	case KindWeapon:
		card = formatWeapon(rec)
	case KindSpell:
		card = formatSpell(rec)
	default:
		card = formatGeneric(rec)
	}
	return Output{Card: card}
}

func formatWeapon(rec nethys.Record) *Card {
	text := markup.Normalize(rec.Text)
	weapon := stats.Extract(text)
	card := baseCard(rec, text)

	// The index sometimes returns hits without trait_raw; the text scan
	// recovers traits named in the prose.
	rawTraits := rec.Traits
	if len(rawTraits) == 0 {
		rawTraits = stats.ExtractTraits(text)
	}
	traits := stats.DescribeTraits(rawTraits, weapon.Damage)
	card.addSection("Traits", Truncate(joinOr(traits, "None"), SectionLimit), false)

	props := fmt.Sprintf("**Price** %s", orNA(rec.Price))
	if rec.Level != nil {
		props += fmt.Sprintf("\n**Level** %d", *rec.Level)
	}
	props += fmt.Sprintf("\n**Bulk** %s", orNA(weapon.Bulk))
	card.addSection("Properties", Truncate(props, SectionLimit), true)

	card.addSection("Combat", Truncate(fmt.Sprintf("**Damage** %s\n**Hands** %s",
		orNA(weapon.Damage), orNA(weapon.Hands)), SectionLimit), true)

	weaponType := weapon.Type
	if weaponType == "" {
		weaponType = rec.Type
	}
	card.addSection("Classification", Truncate(fmt.Sprintf("**Type** %s\n**Group** %s\n**Category** %s",
		titleOr(weaponType, "Unknown"), titleOr(weapon.Group, "N/A"), titleOr(rec.Category, "N/A")), SectionLimit), true)

	card.addSection("Critical Specialization", Truncate(fmt.Sprintf("**%s**: %s",
		titleOr(weapon.Group, "Unknown"), stats.CritEffect(weapon.Group)), SectionLimit), false)

	if favored := CaptureAfter("Favored Weapon", text); favored != "" {
		card.addSection("Favored Weapon of", Truncate(favored, SectionLimit), false)
	}
	if magic := trimMagicPrefix(CaptureAfter("Specific Magic", text)); magic != "" {
		card.addSection("Specific Magic "+plural(rec.Name), Truncate(magic, SectionLimit), false)
	}
	return card
}

// spellLabels are captured in order when present in the text.
var spellLabels = []string{
	"Cast", "Range", "Targets", "Duration", "Traditions",
	"Trigger", "Requirements", "Activation",
}

func formatSpell(rec nethys.Record) *Card {
	text := markup.Normalize(rec.Text)
	card := baseCard(rec, text)

	card.addSection("Traits", Truncate(joinOr(codeLabels(rec.Traits), "None"), SectionLimit), false)
	if rec.Level != nil {
		card.addSection("Level", strconv.Itoa(*rec.Level), false)
	}
	for _, label := range spellLabels {
		if value := CaptureAfter(label, text); value != "" {
			card.addSection(label, Truncate(value, SectionLimit), false)
		}
	}
	return card
}

func formatGeneric(rec nethys.Record) *Card {
	text := markup.Normalize(rec.Text)
	card := baseCard(rec, text)

	card.addSection("Traits", Truncate(joinOr(codeLabels(rec.Traits), "None"), SectionLimit), false)
	if rec.Level != nil {
		card.addSection("Level", strconv.Itoa(*rec.Level), false)
	}
	if rec.Category != "" {
		card.addSection("Category", rec.Category, false)
	}
	return card
}

func baseCard(rec nethys.Record, text string) *Card {
	return &Card{
		Title:       rec.Name,
		URL:         rec.URL,
		Description: MainDescription(text),
		Footer:      fmt.Sprintf("Data from Archives of Nethys | Source: %s", orNA(rec.Source)),
		Color:       rarityColor(rec.Rarity),
	}
}

// rarityColor maps rarity to an embed color. Common is the implicit default
// and gets the default color.
func rarityColor(rarity string) int {
	switch strings.ToLower(rarity) {
	case "uncommon":
		return ColorUncommon
	case "rare":
		return ColorRare
	case "unique":
		return ColorUnique
	default:
		return ColorDefault
	}
}

// trimMagicPrefix drops the leading "Weapons"/"Items" the index leaves at the
// start of a specific-magic capture.
func trimMagicPrefix(value string) string {
	for _, prefix := range []string{"Weapons ", "Items "} {
		if strings.HasPrefix(value, prefix) {
			return strings.TrimPrefix(value, prefix)
		}
	}
	return value
}

func codeLabels(traits []string) []string {
	out := make([]string, 0, len(traits))
	for _, t := range traits {
		out = append(out, "`"+t+"`")
	}
	return out
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, " ")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func titleOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return titleWords(value)
}
