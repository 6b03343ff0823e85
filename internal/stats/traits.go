package stats

import (
	"fmt"
	"regexp"
	"strings"
)

// versatileTrait matches the versatile trait tokens the index hands out,
// e.g. "versatile-p", "versatile p", "Versatile (B)".
var versatileTrait = regexp.MustCompile(`(?i)^versatile[\s\-(]*([psb])\)?$`)

// BaseDamageType returns the type word of a damage string like
// "1d8 slashing", or "" when it cannot be determined.
func BaseDamageType(damage string) string {
	if !strings.Contains(damage, " ") {
		return ""
	}
	parts := strings.Fields(damage)
	return strings.ToLower(parts[len(parts)-1])
}

// DescribeTraits renders raw trait tokens for display. Plain traits come back
// as inline code labels; a versatile trait expands into the sentence
// explaining the alternate damage type, contrasted against the weapon's base
// damage when the two differ.
func DescribeTraits(traits []string, baseDamage string) []string {
	baseType := BaseDamageType(baseDamage)

	out := make([]string, 0, len(traits))
	for _, trait := range traits {
		m := versatileTrait.FindStringSubmatch(strings.TrimSpace(trait))
		if m == nil {
			out = append(out, "`"+trait+"`")
			continue
		}
		letter := strings.ToUpper(m[1])
		altType := damageTypeNames[strings.ToLower(letter)]

		var b strings.Builder
		fmt.Fprintf(&b, "**Versatile %s**: Can be used to deal %s damage", letter, altType)
		if baseType != "" && baseType != altType {
			fmt.Fprintf(&b, " instead of its normal %s damage", baseType)
		}
		b.WriteString(". You choose the damage type each time you attack.")
		out = append(out, b.String())
	}
	return out
}
