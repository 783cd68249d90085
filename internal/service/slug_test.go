package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Attack on Titan":        "attack-on-titan",
		"  Spaced   Out  ":       "spaced-out",
		"Re:Zero (Season 2)":     "rezero-season-2",
		"ALL CAPS!!!":            "all-caps",
		"already-a-slug":         "already-a-slug",
		"episode #7 — directors": "episode-7-directors",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), "input %q", in)
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := strings.Repeat("abcde ", 40)
	assert.LessOrEqual(t, len(slugify(long)), 100)
}
