package core

import "strings"

// DefaultSuffixes is the suffix set tried for each candidate name. The
// empty suffix is first so the bare name leads the generation order.
var DefaultSuffixes = []string{"", "hq", "io", "app", "tech", "labs", "sys", "pro", "hub"}

// DefaultExtensions is the extension set, .com first.
var DefaultExtensions = []string{".com", ".net", ".org", ".io", ".app", ".tech", ".ai"}

// Variations expands a candidate name into its full domain variation
// sequence, in product order: for each suffix, every extension. The
// output is deterministic and always len(suffixes)*len(extensions) long.
func Variations(name string, suffixes, extensions []string) []string {
	base := strings.ToLower(strings.TrimSpace(name))

	variations := make([]string, 0, len(suffixes)*len(extensions))
	for _, suffix := range suffixes {
		stem := base + suffix
		for _, ext := range extensions {
			variations = append(variations, stem+ext)
		}
	}
	return variations
}

var (
	suggestionBases   = []string{"nex", "vox", "zyx", "flux", "byte", "sync", "flow", "quant"}
	suggestionEndings = []string{"ly", "ix", "ex", "or", "ar", "yx", "ra", "on"}

	// curatedSuggestions are hand-picked fallbacks appended after the
	// generated combinations.
	curatedSuggestions = []string{
		"nexova", "vixora", "zypher", "fluxen", "bytex", "vortex",
		"zenith", "nexus", "pixel", "quorum", "vertex", "matrix",
		"axiom", "prism", "synth", "orbit", "helix", "zenit",
	}
)

const maxGeneratedSuggestions = 20

// SuggestNames generates alternative candidate business names: short
// tech-sounding base/ending combinations capped at twenty, followed by
// a curated list. Duplicates are removed, order is preserved.
func SuggestNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, maxGeneratedSuggestions+len(curatedSuggestions))

	generated := 0
	for _, base := range suggestionBases {
		for _, ending := range suggestionEndings {
			if generated >= maxGeneratedSuggestions {
				break
			}
			name := base + ending
			if !Pronounceable(name) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
			generated++
		}
	}

	for _, name := range curatedSuggestions {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// Pronounceable reports whether a name avoids runs of three identical
// consonants, a cheap proxy for speakability used when ranking
// suggestions.
func Pronounceable(name string) bool {
	lower := strings.ToLower(name)
	for _, c := range "bcdfghjklmnpqrstvwxyz" {
		if strings.Contains(lower, strings.Repeat(string(c), 3)) {
			return false
		}
	}
	return true
}
