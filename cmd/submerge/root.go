package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/submerge/internal/check"
	"github.com/backmassage/submerge/internal/config"
	"github.com/backmassage/submerge/internal/display"
	"github.com/backmassage/submerge/internal/ffmpeg"
	"github.com/backmassage/submerge/internal/lock"
	"github.com/backmassage/submerge/internal/logging"
	"github.com/backmassage/submerge/internal/pipeline"
)

const longHelp = `Add subtitles to video files. Put the subtitles in one directory and the
videos in another; make sure both contain only those files.

Files are paired purely by sorted order: the first subtitle goes with the
first video, and so on. Names are not compared, so a single extra or
missing file shifts every later pair. Use --dry-run to check the pairing.

Each pair is remuxed with "ffmpeg -c copy" (no re-encode) into
<video>_merged.<ext> next to the video. Files ending in _merged are skipped
on later runs.

Offset: --offset N is passed to ffmpeg as -itsoffset N on the video input,
so the sign reads backwards: +N shows subtitles N seconds EARLIER, -N shows
them LATER.`

func newRootCommand() *cobra.Command {
	var flags *config.FlagValues

	rootCmd := &cobra.Command{
		Use:           "submerge -s <subtitle_dir> -t <video_dir> -l <language> [flags]",
		Short:         "Mux subtitle files into video files by sorted order",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, flags)
		},
	}

	flags = config.BindFlags(rootCmd.Flags())
	rootCmd.Flags().SortFlags = false
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// runMerge resolves configuration, sets up logging, and runs the pipeline.
func runMerge(cmd *cobra.Command, flags *config.FlagValues) error {
	// Bootstrap: the logger doesn't exist yet, so errors are returned for
	// main to print.
	cfg := config.DefaultConfig()
	if err := config.LoadFile(&cfg, flags.ConfigFile()); err != nil {
		return err
	}
	config.ApplyFlags(&cfg, cmd.Flags(), flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Logger available: all output goes through log from here on.
	display.PrintBanner(cmd.OutOrStdout())

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return errReported
		}
		return nil
	}

	log.Info("=== submerge v%s (%s) ===", version, commit)
	log.Info("Subtitles: %s", cfg.SourceDir)
	log.Info("Videos:    %s", cfg.TargetDir)
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "Config file: %s", cfg.ConfigFile)
	}

	if !cfg.DryRun {
		lk, err := lock.Acquire(cfg.TargetDir)
		if err != nil {
			log.Error("%v", err)
			return errReported
		}
		defer func() {
			if err := lk.Release(); err != nil {
				log.Warn("Cannot release lock %s: %v", lk.Path(), err)
			}
		}()
	}

	// Cancel on SIGINT/SIGTERM so no further pair starts. A terminal Ctrl-C
	// also reaches the ffmpeg in flight, which exits and may leave a partial
	// output; a SIGTERM sent to submerge alone lets it finish.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := pipeline.Run(ctx, &cfg, log, ffmpeg.NewExecRunner())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Stopped after %d of %d pairs", stats.Merged+stats.Failed, stats.Total)
		} else {
			log.Error("Aborted: %v", err)
		}
		return errReported
	}
	if !stats.Ok() {
		return errReported
	}
	return nil
}
