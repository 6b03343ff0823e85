package stats

import "strings"

// critEffects maps weapon group to its critical specialization rules text.
// The table is fixed: unrecognized groups get the fallback, never a guess.
var critEffects = map[string]string{
	"axe":      "Choose one creature adjacent to the initial target and within reach. If its AC is lower than your attack roll result for the critical hit, you deal damage to that creature equal to the result of the weapon damage die you rolled (including extra dice for its striking rune, if any).",
	"bow":      "If the target of the critical hit is adjacent to a surface, it gets stuck to that surface by the missile. The target is **immobilized** and must spend an Interact action to attempt a DC 10 Athletics check to pull the missile free.",
	"brawling": "The target must succeed at a Fortitude save against your class DC or be **slowed 1** until the end of your next turn.",
	"club":     "You knock the target away from you up to 10 feet (you choose the distance). This is forced movement.",
	"dart":     "The target takes 1d6 persistent bleed damage. It gains an item bonus to this flat check equal to the item bonus to attack rolls.",
	"flail":    "The target is knocked **prone**.",
	"hammer":   "The target is knocked **prone**.",
	"knife":    "The target takes 1d6 persistent bleed damage. It gains an item bonus to this flat check equal to the item bonus to attack rolls.",
	"pick":     "The weapon viciously pierces the target, who takes 2 additional damage per weapon damage die.",
	"polearm":  "The target is moved 5 feet in a direction of your choice. This is forced movement.",
	"shield":   "You knock the target back from you 5 feet. This is forced movement.",
	"sling":    "The target must succeed at a Fortitude save against your class DC or be **stunned 1**.",
	"spear":    "The weapon pierces the target, weakening its attacks. The target takes a -2 circumstance penalty to damage rolls until the start of your next turn.",
	"sword":    "The target is made **off-guard** until the start of your next turn.",
}

// NoCritEffect is returned for groups outside the table.
const NoCritEffect = "No specific critical specialization effect for this weapon group."

// CritEffect looks up the critical specialization effect for a weapon group.
func CritEffect(group string) string {
	if effect, ok := critEffects[strings.ToLower(group)]; ok {
		return effect
	}
	return NoCritEffect
}

// CritGroups returns every group present in the table.
func CritGroups() []string {
	groups := make([]string, 0, len(critEffects))
	for g := range critEffects {
		groups = append(groups, g)
	}
	return groups
}
