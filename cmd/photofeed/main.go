package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/photofeed/internal/auth"
	"github.com/jask/photofeed/internal/config"
	"github.com/jask/photofeed/internal/content"
	"github.com/jask/photofeed/internal/geo"
	"github.com/jask/photofeed/internal/logging"
	"github.com/jask/photofeed/internal/route"
	"github.com/jask/photofeed/internal/tui"
)

type options struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "photofeed",
		Short:         "Terminal photo and video feed",
		Long:          "photofeed is a terminal photo and video feed behind a demo sign-in.\n\nRun without arguments to start the interactive UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger, err := logging.New(cfg.Log, opts.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			opts.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $PHOTOFEED_CONFIG or ~/.config/photofeed/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newMockCmd(opts))
	return root
}

// loadConfig reads path when the flag is set and otherwise defers to
// config.Load, which honours $PHOTOFEED_CONFIG.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func runUI(ctx context.Context, opts *options) error {
	allow, err := opts.cfg.AllowList()
	if err != nil {
		return err
	}
	store := auth.NewStore(allow, opts.log)
	resolver := route.NewResolver(store, opts.log)

	now := time.Now()
	c := opts.cfg
	app := tui.New(ctx, tui.Deps{
		Store:    store,
		Resolver: resolver,
		Feed:     content.NewFeed(c.Content.Images, c.Content.Videos, c.Content.Seed, now),
		Drafts:   content.NewDraftBox(time.Now),
		Locator: geo.StaticLocator{
			Reading: geo.Reading{Latitude: c.Location.Latitude, Longitude: c.Location.Longitude, Accuracy: c.Location.Accuracy},
			Denied:  c.Location.Denied,
		},
		Config: c,
		Log:    opts.log,
	})

	opts.log.Info("starting", zap.Int("users", allow.Len()))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
