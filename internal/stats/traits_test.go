package stats

import (
	"strings"
	"testing"
)

func TestBaseDamageType(t *testing.T) {
	cases := []struct {
		damage string
		want   string
	}{
		{"1d8 slashing", "slashing"},
		{"2d6+2 Piercing", "piercing"},
		{"1d8", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := BaseDamageType(c.damage); got != c.want {
			t.Fatalf("BaseDamageType(%q) = %q, want %q", c.damage, got, c.want)
		}
	}
}

func TestDescribeTraitsVersatileContrast(t *testing.T) {
	got := DescribeTraits([]string{"versatile-p"}, "1d8 slashing")
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %#v", got)
	}
	want := "**Versatile P**: Can be used to deal piercing damage instead of its normal slashing damage. You choose the damage type each time you attack."
	if got[0] != want {
		t.Fatalf("got %q, want %q", got[0], want)
	}
}

func TestDescribeTraitsVersatileSameTypeOmitsContrast(t *testing.T) {
	got := DescribeTraits([]string{"versatile s"}, "1d8 slashing")
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %#v", got)
	}
	if strings.Contains(got[0], "instead of") {
		t.Fatalf("contrastive clause should be omitted for identical types: %q", got[0])
	}
	if !strings.Contains(got[0], "deal slashing damage") {
		t.Fatalf("missing alternate type: %q", got[0])
	}
}

func TestDescribeTraitsVersatileUnknownBase(t *testing.T) {
	got := DescribeTraits([]string{"Versatile B"}, "")
	if len(got) != 1 || strings.Contains(got[0], "instead of") {
		t.Fatalf("contrastive clause should be omitted for unknown base: %#v", got)
	}
}

func TestDescribeTraitsPlainLabels(t *testing.T) {
	got := DescribeTraits([]string{"agile", "finesse"}, "1d4 piercing")
	if len(got) != 2 {
		t.Fatalf("expected two entries, got %#v", got)
	}
	if got[0] != "`agile`" || got[1] != "`finesse`" {
		t.Fatalf("unexpected labels: %#v", got)
	}
}
