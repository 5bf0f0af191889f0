package utils

import "testing"

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"S", "S", true},
		{"small", "S", true},
		{" m ", "M", true},
		{"Medium", "M", true},
		{"L", "L", true},
		{"xl", "XL", true},
		{"2xl", "XXL", true},
		{"XXL", "XXL", true},
		{"XS", "XS", false},
		{"3XL", "3XL", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeSize(tc.input)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("NormalizeSize(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Classic Tee", "classic-tee"},
		{"Ceramic Mug (Premium)", "ceramic-mug-premium"},
		{"  Hoodies & Sweats  ", "hoodies-sweats"},
		{"Water-Bottle 750ml", "water-bottle-750ml"},
		{"ALREADY-SLUGGED", "already-slugged"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.input); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
