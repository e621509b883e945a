package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariationsProductOrder(t *testing.T) {
	variations := Variations("acme", []string{"", "hq"}, []string{".com", ".io"})
	require.Equal(t, []string{"acme.com", "acme.io", "acmehq.com", "acmehq.io"}, variations)
}

func TestVariationsNormalizesName(t *testing.T) {
	variations := Variations("  AcMe ", []string{""}, []string{".com"})
	require.Equal(t, []string{"acme.com"}, variations)
}

func TestVariationsDefaultsLength(t *testing.T) {
	variations := Variations("acme", DefaultSuffixes, DefaultExtensions)
	require.Len(t, variations, len(DefaultSuffixes)*len(DefaultExtensions))
	require.Equal(t, "acme.com", variations[0])
}

func TestVariationsDeterministic(t *testing.T) {
	first := Variations("acme", DefaultSuffixes, DefaultExtensions)
	second := Variations("acme", DefaultSuffixes, DefaultExtensions)
	require.Equal(t, first, second)
}

func TestSuggestNamesNoDuplicates(t *testing.T) {
	names := SuggestNames()
	require.NotEmpty(t, names)

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, dup := seen[name]
		require.False(t, dup, "duplicate suggestion %q", name)
		seen[name] = struct{}{}
		require.Equal(t, strings.ToLower(name), name)
	}
}

func TestSuggestNamesCapsGenerated(t *testing.T) {
	names := SuggestNames()

	generated := 0
	curated := make(map[string]struct{}, len(curatedSuggestions))
	for _, name := range curatedSuggestions {
		curated[name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := curated[name]; !ok {
			generated++
		}
	}
	require.LessOrEqual(t, generated, maxGeneratedSuggestions)
}

func TestPronounceable(t *testing.T) {
	require.True(t, Pronounceable("nexova"))
	require.False(t, Pronounceable("azzz"))
}
