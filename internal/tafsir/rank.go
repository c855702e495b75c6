package tafsir

import "sort"

// preferredSentinel places unlisted editions after every listed one while
// preserving their relative discovery order.
func preferredIndex(lang, identifier string) int {
	preferred := preferredByLanguage[lang]
	for i, id := range preferred {
		if id == identifier {
			return i
		}
	}
	return len(preferred) + 99
}

func typeRank(t string) int {
	if t == "tafsir" {
		return 0
	}
	return 1
}

// Rank orders sources deterministically: commentary before translation,
// then curated preference order, then display name. Input order only
// survives as the final stable tie-break.
func Rank(language string, sources []Source) []Source {
	ranked := make([]Source, len(sources))
	copy(ranked, sources)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if ta, tb := typeRank(a.Type), typeRank(b.Type); ta != tb {
			return ta < tb
		}
		if pa, pb := preferredIndex(language, a.Identifier), preferredIndex(language, b.Identifier); pa != pb {
			return pa < pb
		}
		return a.displayName() < b.displayName()
	})
	return ranked
}
