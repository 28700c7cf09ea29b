package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ims-labs/timsdf/internal/adapters/fs"
	"github.com/ims-labs/timsdf/internal/cliconfig"
	pkglog "github.com/ims-labs/timsdf/pkg/log"
	"github.com/ims-labs/timsdf/pkg/timsdf"
)

const longHelp = `Read Bruker timsTOF acquisition stores (.d directories).

A store pairs a SQLite frame catalogue (analysis.tdf) with a raw peak
container (analysis.tdf_bin). timsdf opens the pair, decodes frames on
demand, and reports calibrated ion-mobility and m/z values.

Configure via flags, TIMSDF_* environment variables, or a TOML file
(default: $HOME/.timsdf/config.toml); flags win, then environment, then file.`

const exampleUsage = `  timsdf info /data/run_2024.d
  timsdf frames /data/run_2024.d --ms-type fragment-dda --limit 100
  timsdf frames /data/run_2024.d --follow
  timsdf frame /data/run_2024.d 42 --peaks 20`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	// loadConfig resolves the final configuration for a subcommand: file,
	// then environment, then flags, with the store path taken from the
	// positional argument when given.
	loadConfig := func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cfg.StorePath = args[0]
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
		if len(args) > 0 {
			changed["store"] = true
		}

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log = log.Level(cliconfig.ParseLevel(cfg.LogLevel))
		return nil
	}

	openStore := func() (*timsdf.Handle, error) {
		adapter := pkglog.NewZerologAdapterWithLogger(log)
		return timsdf.Open(cfg.StorePath, timsdf.WithLogger(adapter))
	}

	root := &cobra.Command{
		Use:           "timsdf",
		Short:         "Read Bruker timsTOF acquisition stores",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.timsdf/config.toml)")
	root.PersistentFlags().StringVar(&cfg.StorePath, "store", "", "path to the .d store directory")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace|debug|info|warn|error)")

	infoCmd := &cobra.Command{
		Use:   "info [store.d]",
		Short: "Print a store summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}
			h, err := openStore()
			if err != nil {
				return err
			}
			defer h.Close()
			return printInfo(cmd.OutOrStdout(), h, cfg.StorePath)
		},
	}

	framesCmd := &cobra.Command{
		Use:   "frames [store.d]",
		Short: "List frames, decoding each in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, args); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runFrames(ctx, cmd.OutOrStdout(), log, cfg)
		},
	}
	framesCmd.Flags().IntVar(&cfg.Limit, "limit", cfg.Limit, "stop after N frames (0 = all)")
	framesCmd.Flags().StringVar(&cfg.MsType, "ms-type", cfg.MsType, "only list frames of this type (precursor|fragment-dda|fragment-dia)")
	framesCmd.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "keep watching the store for appended frames")
	framesCmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "coalescing window for --follow change events")

	frameCmd := &cobra.Command{
		Use:   "frame [store.d] <id>",
		Short: "Decode and dump a single frame",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idArg := args[len(args)-1]
			id, err := strconv.ParseInt(idArg, 10, 64)
			if err != nil {
				return fmt.Errorf("frame id %q: %w", idArg, err)
			}
			if err := loadConfig(cmd, args[:len(args)-1]); err != nil {
				return err
			}
			h, err := openStore()
			if err != nil {
				return err
			}
			defer h.Close()
			return printFrame(cmd.Context(), cmd.OutOrStdout(), h, id, cfg.PeakLimit)
		},
	}
	frameCmd.Flags().IntVar(&cfg.PeakLimit, "peaks", cfg.PeakLimit, "number of peaks to print (0 = none)")

	root.AddCommand(infoCmd, framesCmd, frameCmd)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("timsdf")
		os.Exit(1)
	}
}

func printInfo(w io.Writer, h *timsdf.Handle, path string) error {
	cal := h.Calibration()
	fmt.Fprintf(w, "store:       %s\n", path)
	if desc := h.Description(); desc != "" {
		fmt.Fprintf(w, "description: %s\n", desc)
	}
	fmt.Fprintf(w, "frames:      %d (%d precursor, %d fragment)\n",
		h.FrameCount(), len(h.PrecursorFrameIDs()), len(h.FragmentFrameIDs()))
	fmt.Fprintf(w, "m/z range:   %.2f - %.2f\n", cal.MzLower, cal.MzUpper)
	fmt.Fprintf(w, "1/K0 range:  %.3f - %.3f\n", cal.OneOverK0Lower, cal.OneOverK0Upper)
	fmt.Fprintf(w, "metadata:    %d keys\n", len(h.GlobalMetadata()))
	return nil
}

// runFrames makes one full pass over the store, and in follow mode keeps
// reopening it whenever the watcher reports a change, resuming after the
// last frame id already printed.
func runFrames(ctx context.Context, w io.Writer, log zerolog.Logger, cfg cliconfig.Config) error {
	adapter := pkglog.NewZerologAdapterWithLogger(log)

	var lastID int64
	pass := func() error {
		h, err := timsdf.Open(cfg.StorePath, timsdf.WithLogger(adapter))
		if err != nil {
			return err
		}
		defer h.Close()

		printed := 0
		it := h.Frames()
		for {
			frame, err := it.Next(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				var de *timsdf.DecodeError
				if errors.As(err, &de) {
					log.Warn().Int64("frame_id", de.FrameID).Int("code", de.Code).
						Err(err).Msg("skipping undecodable frame")
					continue
				}
				return err
			}
			if frame.FrameID <= lastID && cfg.Follow {
				continue
			}
			if cfg.MsType != "" && frame.MsType.String() != cfg.MsType {
				lastID = frame.FrameID
				continue
			}
			fmt.Fprintf(w, "%-8d %-12s rt=%8.3fs peaks=%d\n",
				frame.FrameID, frame.MsType, frame.RetentionTime, frame.NumPeaks())
			lastID = frame.FrameID
			printed++
			if cfg.Limit > 0 && printed >= cfg.Limit {
				return nil
			}
		}
	}

	if err := pass(); err != nil {
		return err
	}
	if !cfg.Follow {
		return nil
	}

	watcher, err := fs.NewStoreWatcher(cfg.StorePath, cfg.Debounce, adapter)
	if err != nil {
		return err
	}
	defer watcher.Close()
	watcher.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if err := pass(); err != nil {
				log.Warn().Err(err).Msg("re-reading store after change")
			}
		}
	}
}

func printFrame(ctx context.Context, w io.Writer, h *timsdf.Handle, id int64, peakLimit int) error {
	frame, err := h.Frame(ctx, id)
	if err != nil {
		return err
	}
	meta, err := h.Meta(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "frame %d: %s, rt=%.3fs, scans=%d, peaks=%d\n",
		frame.FrameID, frame.MsType, frame.RetentionTime, meta.NumScans, frame.NumPeaks())
	n := peakLimit
	if n > frame.NumPeaks() {
		n = frame.NumPeaks()
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "  scan=%3d 1/K0=%.4f mz=%9.4f intensity=%.0f\n",
			frame.Scan[i], frame.InvMobility[i], frame.Mz[i], frame.Intensity[i])
	}
	if n < frame.NumPeaks() {
		fmt.Fprintf(w, "  ... %d more peaks\n", frame.NumPeaks()-n)
	}
	return nil
}
