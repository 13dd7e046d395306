package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dlx.dev/pentomino/internal/domain"
)

func TestParseSeparateFlags(t *testing.T) {
	got := Parse([]string{"-l", "-y", "-v", "-t", "-w", "-z"})
	want := []domain.Letter{domain.L, domain.T, domain.V, domain.W, domain.Y, domain.Z}
	assert.Equal(t, want, got)
}

func TestParseClusteredFlag(t *testing.T) {
	got := Parse([]string{"-lyvtwz"})
	want := []domain.Letter{domain.L, domain.T, domain.V, domain.W, domain.Y, domain.Z}
	assert.Equal(t, want, got)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	got := Parse([]string{"-lYvTwZ"})
	want := []domain.Letter{domain.L, domain.T, domain.V, domain.W, domain.Y, domain.Z}
	assert.Equal(t, want, got)
}

func TestParseDuplicatesCollapse(t *testing.T) {
	got := Parse([]string{"-l", "-l", "-y"})
	want := []domain.Letter{domain.L, domain.Y}
	assert.Equal(t, want, got)
}

func TestParseIgnoresUnknownLettersAndLongFlags(t *testing.T) {
	got := Parse([]string{"-lq", "--log-level", "debug", "not-a-flag"})
	want := []domain.Letter{domain.L}
	assert.Equal(t, want, got)
}

func TestParseEmptyWhenNoDashArgs(t *testing.T) {
	got := Parse([]string{"foo", "bar"})
	assert.Empty(t, got)
}
