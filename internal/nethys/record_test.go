package nethys

import "testing"

func TestValidCategory(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"All", true},
		{"all", true},
		{"", true},
		{"Spell", true},
		{"spell", true},
		{"Equipment", true},
		{"Weapons", false},
		{"monsterx", false},
	}
	for _, c := range cases {
		if got := ValidCategory(c.name); got != c.want {
			t.Fatalf("ValidCategory(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFormatCopper(t *testing.T) {
	cases := []struct {
		copper int
		want   string
	}{
		{100, "1 gp"},
		{110, "1 gp 1 sp"},
		{111, "1 gp 1 sp 1 cp"},
		{10, "1 sp"},
		{5, "5 cp"},
		{0, ""},
	}
	for _, c := range cases {
		if got := formatCopper(c.copper); got != c.want {
			t.Fatalf("formatCopper(%d) = %q, want %q", c.copper, got, c.want)
		}
	}
}
