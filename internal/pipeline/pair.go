package pipeline

import "sort"

// FilePair is one positional (subtitle, video) match.
type FilePair struct {
	Index    int
	Subtitle string
	Video    string
}

// PairResult is the zipped pairing plus whatever neither side could match.
// Entries cut off by the limit are not counted as unpaired.
type PairResult struct {
	Pairs           []FilePair
	UnpairedSources []string
	UnpairedTargets []string
}

// SortEntries sorts entries in place by full path string, ascending.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}

// Pair sorts both listings by path and zips them positionally. Pairing stops
// at the shorter side; when limit > 0 at most limit pairs are returned.
// The inputs are not modified.
func Pair(sources, targets []Entry, limit int) PairResult {
	src := append([]Entry(nil), sources...)
	dst := append([]Entry(nil), targets...)
	SortEntries(src)
	SortEntries(dst)

	n := min(len(src), len(dst))
	var res PairResult
	for _, e := range src[n:] {
		res.UnpairedSources = append(res.UnpairedSources, e.Path)
	}
	for _, e := range dst[n:] {
		res.UnpairedTargets = append(res.UnpairedTargets, e.Path)
	}

	if limit > 0 && limit < n {
		n = limit
	}
	res.Pairs = make([]FilePair, 0, n)
	for i := 0; i < n; i++ {
		res.Pairs = append(res.Pairs, FilePair{Index: i, Subtitle: src[i].Path, Video: dst[i].Path})
	}
	return res
}
