package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "BURGER", "BURGER"},
		{"lowercase upcased", "chicken rice", "CHICKEN RICE"},
		{"full combo", "Burger W/ Cheese & Fries (2) PCS 3", "BURGER WITH CHEESE AND FRIES"},
		{"with shorthand", "RICE W/GRAVY", "RICE WITHGRAVY"},
		{"ampersand", "FISH & CHIPS", "FISH AND CHIPS"},
		{"wit typo", "CHICKEN WIT RICE", "CHICKEN WITH RICE"},
		{"wit at string edge untouched", "WIT RICE", "WIT RICE"},
		{"literal backslash n", `NOODLES\nLARGE`, "NOODLES LARGE"},
		{"pcs stripped inside words", "3PCS NUGGETS", "NUGGETS"},
		{"digits stripped", "COKE 1.5L X2", "COKE L X"},
		{"punctuation stripped", "COMBO (A) @ 99.00", "COMBO A"},
		{"whitespace collapsed", "  HALO   HALO  ", "HALO HALO"},
		{"only digits", "12345", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Burger W/ Cheese & Fries (2) PCS 3",
		"CHICKEN WIT RICE",
		"FISH & CHIPS",
		`NOODLES\nLARGE`,
		"  HALO   HALO  ",
		"COMBO (A) @ 99.00",
		"烧鸭饭",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestClean_ReplacementOrder(t *testing.T) {
	// W/ expands before the space-bounded WIT fix, so WITH never becomes
	// WITHH.
	assert.Equal(t, "RICE WITH EGG", Clean("RICE W/ EGG"))
}

func TestCleanValue_NonString(t *testing.T) {
	assert.Equal(t, "", CleanValue(nil))
	assert.Equal(t, "", CleanValue(42))
	assert.Equal(t, "", CleanValue(3.14))
	assert.Equal(t, "", CleanValue([]byte("BURGER")))
}

func TestCleanValue_String(t *testing.T) {
	assert.Equal(t, "FISH AND CHIPS", CleanValue("Fish & Chips"))
}
