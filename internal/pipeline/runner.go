package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/backmassage/submerge/internal/config"
	"github.com/backmassage/submerge/internal/display"
	"github.com/backmassage/submerge/internal/ffmpeg"
	"github.com/backmassage/submerge/internal/language"
	"github.com/backmassage/submerge/internal/logging"
	"github.com/backmassage/submerge/internal/naming"
)

// maxListedLeftovers caps how many unpaired names are logged individually.
const maxListedLeftovers = 5

// Run is the top-level batch entry point. It lists both directories, pairs
// them, and merges each pair sequentially. The returned error is the fatal
// condition that stopped the run, if any; per-pair failures tolerated by
// --keep-going show up only in the stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, exec ffmpeg.Executor) (RunStats, error) {
	var stats RunStats

	checkLanguage(cfg, log)

	res, err := discoverPairs(cfg, log)
	if err != nil {
		return stats, err
	}

	stats.Total = len(res.Pairs)
	stats.UnpairedSources = res.UnpairedSources
	stats.UnpairedTargets = res.UnpairedTargets
	logLeftovers(log, &stats)

	if cfg.DryRun {
		return dryRun(cfg, log, res.Pairs, &stats)
	}

	for i, pair := range res.Pairs {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted; %d pair(s) not started", stats.Total-i)
			stats.Skipped = stats.Total - i
			logSummary(log, &stats)
			return stats, ctx.Err()
		}

		if err := processPair(ctx, cfg, log, exec, pair, &stats); err != nil {
			stats.Skipped = stats.Total - stats.Current
			if errors.Is(err, context.Canceled) {
				stats.Skipped++
			}
			logSummary(log, &stats)
			return stats, err
		}
	}

	logSummary(log, &stats)
	return stats, nil
}

// discoverPairs lists both directories and zips them. Listing errors are
// returned before anything else happens.
func discoverPairs(cfg *config.Config, log *logging.Logger) (PairResult, error) {
	sources, err := List(cfg.SourceDir)
	if err != nil {
		return PairResult{}, err
	}
	targets, err := List(cfg.TargetDir)
	if err != nil {
		return PairResult{}, err
	}

	if n := countDirs(sources); n > 0 {
		log.Warn("Source directory contains %d subdirectories; they are paired like files", n)
	}

	filtered := FilterTargets(targets)
	if dropped := len(targets) - len(filtered); dropped > 0 {
		log.Debug(cfg.Verbose, "Ignoring %d directories or *%s files in %s", dropped, config.MergedSuffix, cfg.TargetDir)
	}

	res := Pair(sources, filtered, cfg.StopAfter)
	log.Info("Subtitles: %d  Videos: %d  Pairs: %d", len(sources), len(filtered), len(res.Pairs))
	return res, nil
}

// processPair merges one pair. It returns a non-nil error only when the run
// must stop: malformed path, spawn failure, an interrupt that killed ffmpeg,
// or an ffmpeg failure without --keep-going.
func processPair(ctx context.Context, cfg *config.Config, log *logging.Logger, exec ffmpeg.Executor, pair FilePair, stats *RunStats) error {
	log.Info("[%d/%d] Subtitle path: %s", stats.Current, stats.Total, pair.Subtitle)
	log.Info("[%d/%d] Video path: %s", stats.Current, stats.Total, pair.Video)

	output, err := naming.MergedOutputPath(pair.Video)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return err
	}
	log.Info("[%d/%d] Output path: %s", stats.Current, stats.Total, output)

	cmd := ffmpeg.Build(cfg, ffmpeg.MergeInputs{Video: pair.Video, Subtitle: pair.Subtitle, Output: output})
	log.Debug(cfg.Verbose, "  %s", cmd)

	result := exec.Execute(cmd, cfg.Verbose)
	if result.Err == nil {
		stats.Merged++
		if fi, err := os.Stat(output); err == nil {
			stats.OutputBytes += fi.Size()
			log.Success("Merged: %s (%s)", filepath.Base(output), display.FormatBytes(fi.Size()))
		} else {
			log.Success("Merged: %s", filepath.Base(output))
		}
		return nil
	}

	// Ctrl-C reaches ffmpeg through the process group too, so a failure
	// after cancellation is the interrupt, not a bad merge.
	if ctx.Err() != nil {
		log.Warn("Interrupted while merging %s; %s may be incomplete", filepath.Base(pair.Video), output)
		return ctx.Err()
	}

	stats.Failed++
	var spawnErr *ffmpeg.SpawnError
	if errors.As(result.Err, &spawnErr) {
		log.Error("%v", spawnErr)
		return spawnErr
	}

	log.Error("Merge failed for %s: %v", filepath.Base(pair.Video), result.Err)
	var exitErr *ffmpeg.ExitError
	if errors.As(result.Err, &exitErr) && exitErr.Stderr != "" && !cfg.Verbose {
		log.Error("ffmpeg said:\n%s", exitErr.Stderr)
	}
	if cfg.KeepGoing {
		return nil
	}
	return fmt.Errorf("pair %d (%s): %w", pair.Index+1, filepath.Base(pair.Video), result.Err)
}

// dryRun prints the pairing table and every command without executing any.
func dryRun(cfg *config.Config, log *logging.Logger, pairs []FilePair, stats *RunStats) (RunStats, error) {
	rows := make([][]string, 0, len(pairs))
	cmds := make([]ffmpeg.Command, 0, len(pairs))
	for _, pair := range pairs {
		output, err := naming.MergedOutputPath(pair.Video)
		if err != nil {
			log.Error("%v", err)
			stats.Failed++
			stats.Skipped = stats.Total - pair.Index - 1
			return *stats, err
		}
		rows = append(rows, []string{
			strconv.Itoa(pair.Index + 1),
			filepath.Base(pair.Subtitle),
			filepath.Base(pair.Video),
			filepath.Base(output),
		})
		cmds = append(cmds, ffmpeg.Build(cfg, ffmpeg.MergeInputs{Video: pair.Video, Subtitle: pair.Subtitle, Output: output}))
		stats.Planned++
	}

	log.Warn("DRY RUN: nothing will be written")
	if len(rows) > 0 {
		fmt.Fprintln(os.Stdout, display.Table(
			[]string{"#", "Subtitle", "Video", "Output"},
			rows,
			display.AlignRight,
		))
	}
	for _, cmd := range cmds {
		log.Info("[DRY] %s", cmd)
	}
	return *stats, nil
}

// checkLanguage logs what the configured language tag means to ffmpeg.
func checkLanguage(cfg *config.Config, log *logging.Logger) {
	if !cfg.HasLanguageMetadata() {
		log.Debug(cfg.Verbose, "No language tag; subtitle stream language left unset")
		return
	}
	info, err := language.Describe(cfg.Language)
	if err != nil {
		log.Warn("%v; it will be written verbatim", err)
		return
	}
	if !info.Exact {
		log.Warn("Language %q is %s; containers expect ISO 639-2, consider --language %s", info.Tag, info.Name, info.ISO3)
		return
	}
	log.Info("Subtitle language: %s (%s)", info.Name, info.Tag)
}

// logLeftovers warns about files that got no partner. Pairing itself is
// unaffected.
func logLeftovers(log *logging.Logger, stats *RunStats) {
	warn := func(kind string, paths []string) {
		if len(paths) == 0 {
			return
		}
		log.Warn("%d %s file(s) have no partner and will be ignored", len(paths), kind)
		for i, p := range paths {
			if i == maxListedLeftovers {
				log.Warn("  … and %d more", len(paths)-i)
				break
			}
			log.Warn("  %s", filepath.Base(p))
		}
	}
	warn("subtitle", stats.UnpairedSources)
	warn("video", stats.UnpairedTargets)
}

// logSummary prints the batch summary table.
func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("=== Summary ===")
	fmt.Fprintln(os.Stdout, display.Table(
		[]string{"Pairs", "Merged", "Failed", "Skipped", "Unpaired", "Written"},
		[][]string{{
			strconv.Itoa(stats.Total),
			strconv.Itoa(stats.Merged),
			strconv.Itoa(stats.Failed),
			strconv.Itoa(stats.Skipped),
			strconv.Itoa(stats.Unpaired()),
			display.FormatBytes(stats.OutputBytes),
		}},
		display.AlignRight, display.AlignRight, display.AlignRight, display.AlignRight, display.AlignRight, display.AlignRight,
	))
}
