package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/config"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
	"github.com/walteh/restyle/pkg/presets"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the persistent flags shared by every command
type rootOpts struct {
	configFile string
	root       string
	debug      bool
}

// 🏗️ newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	o := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "restyle",
		Short: "Insert dark mode class variants into .tsx files",
		Long: `restyle walks a front-end tree and applies ordered regex rules to every
matching file, writing a file back only when its content changed.

Rules come from built-in presets (see "restyle presets") or from a config
file (.restyle.yaml, .restyle.hcl, .restyle.json or .restyle).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(o.setupLogging(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		newApplyCmd(o),
		newCheckCmd(o),
		newVerifyCmd(o),
		newRestoreCmd(o),
		newPresetsCmd(),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *rootOpts) {
	cmd.PersistentFlags().StringVarP(&o.configFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().StringVar(&o.root, "root", "", "override the root directory")
	cmd.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging puts a zerolog logger and the console logger in the context
func (o *rootOpts) setupLogging(ctx context.Context, stdout, stderr io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.InfoLevel
	if o.debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	// the console mirrors to zerolog only in debug mode so normal runs stay quiet
	mirror := zerolog.Nop()
	if o.debug {
		mirror = zlog
	}

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(stdout, mirror))
}

// 🎯 resolvePasses picks the passes to run: presets named on the command
// line, or everything the config file lists
func (o *rootOpts) resolvePasses(ctx context.Context, args []string) ([]operation.Pass, operation.Options, error) {
	var opts operation.Options

	if len(args) > 0 {
		// the config still supplies root and options; only a missing file is skipped
		root := o.root
		cfg, err := o.loadConfig(ctx)
		switch {
		case err == nil:
			root = cfg.RootDir()
			opts = cfg.Options()
		case errors.Is(err, os.ErrNotExist):
			zerolog.Ctx(ctx).Debug().Str("config", o.configFile).Msg("no config file, using defaults")
		default:
			return nil, opts, errors.Errorf("loading config %s: %w", o.configFile, err)
		}
		if root == "" {
			root = "."
		}

		passes := make([]operation.Pass, 0, len(args))
		for _, name := range args {
			p, err := presets.Lookup(name)
			if err != nil {
				return nil, opts, err
			}
			passes = append(passes, p.Pass(root))
		}
		return passes, opts, nil
	}

	cfg, err := o.loadConfig(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, opts, errors.Errorf("no presets given and %s not found (try: restyle apply %s)", o.configFile, presets.DarkTheme.Name)
		}
		return nil, opts, errors.Errorf("loading config: %w", err)
	}

	passes, err := cfg.BuildPasses()
	if err != nil {
		return nil, opts, errors.Errorf("expanding config: %w", err)
	}
	return passes, cfg.Options(), nil
}

func (o *rootOpts) loadConfig(ctx context.Context) (*config.RestyleConfig, error) {
	cfg, err := config.Load(ctx, o.configFile)
	if err != nil {
		return nil, err
	}
	if o.root != "" {
		abs, err := filepath.Abs(o.root)
		if err != nil {
			return nil, errors.Errorf("resolving root: %w", err)
		}
		cfg.Root = abs
	}
	return cfg, nil
}
