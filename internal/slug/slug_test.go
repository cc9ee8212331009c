package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Premier League", "premier-league"},
		{"already lower", "retro", "retro"},
		{"multiple spaces", "La  Liga", "la-liga"},
		{"surrounding whitespace", "  Serie A ", "serie-a"},
		{"underscores and hyphens", "long_sleeve - home", "long-sleeve-home"},
		{"punctuation dropped", "Kids' Kits!", "kids-kits"},
		{"digits kept", "Euro 2024", "euro-2024"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
