package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total   int // Pairs scheduled after the limit.
	Current int // 1-based index of the pair in progress.
	Merged  int
	Failed  int
	Skipped int // Pairs never started, or cut short, by an abort or interrupt.
	Planned int // Pairs a dry run would have merged.

	OutputBytes int64 // Total size of merged outputs.

	UnpairedSources []string
	UnpairedTargets []string
}

// Ok reports whether every scheduled pair merged, or in a dry run would
// have been attempted.
func (s *RunStats) Ok() bool {
	return s.Failed == 0 && s.Merged+s.Planned == s.Total
}

// Unpaired returns the number of files on either side left without a partner.
func (s *RunStats) Unpaired() int {
	return len(s.UnpairedSources) + len(s.UnpairedTargets)
}
