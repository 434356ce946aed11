package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"valentine/internal/artifact"
	"valentine/internal/config"
	"valentine/internal/console"
	"valentine/internal/logging"
	"valentine/internal/page"
	"valentine/internal/poem"
	"valentine/internal/share"
)

// recipient is named in the banner.
const recipient = "Shruthi"

// rootCmd prints the poem and writes the animated page.
var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "Print a valentine poem and write it as an animated HTML page",
	Long: `Prints the poem inside a bordered box, writes the same poem as a
self-contained animated HTML page, and explains how to share that page.

Configuration is read from valentine.yaml (or $VALENTINE_CONFIG) and the
VALENTINE_* environment variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.Path())
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			return err
		}
		logging.Get(logging.CategoryBoot).Debugw("config loaded",
			"path", config.Path(), "output", cfg.Output.Path, "width", cfg.Console.Width)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.Context(), cmd.OutOrStdout(), configFrom(cmd.Context()))
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generate runs the whole pipeline: poem box to out, page to the output
// file, then the status line and sharing instructions.
func generate(ctx context.Context, out io.Writer, cfg *config.Config) error {
	log := logging.Get(logging.CategoryRender)
	content := poem.Reference()
	printer := share.NewPrinter(out)

	if err := printer.Banner(recipient); err != nil {
		return err
	}

	box := console.New(cfg.Console.Width)
	if err := box.Render(out, content); err != nil {
		return err
	}
	log.Debugw("printed poem box", "width", box.Width(), "stanzas", content.StanzaCount())

	html, err := newPageRenderer(cfg).Render(content)
	if err != nil {
		return err
	}

	if err := artifact.Write(ctx, cfg.Output.Path, []byte(html)); err != nil {
		return err
	}
	logging.Get(logging.CategoryArtifact).Infow("page written", "path", cfg.Output.Path, "bytes", len(html))

	if err := printer.Saved(cfg.Output.Path); err != nil {
		return err
	}
	return printer.Instructions(cfg.Output.Path)
}

func newPageRenderer(cfg *config.Config) *page.Renderer {
	particles := page.DefaultParticles()
	particles.Hearts.Count = cfg.Page.Hearts
	particles.Petals.Count = cfg.Page.Petals

	return page.New(
		page.WithTiming(page.Timing{
			BaseDelay:   cfg.Page.BaseDelay,
			Step:        cfg.Page.Step,
			FooterExtra: cfg.Page.FooterExtra,
		}),
		page.WithParticles(particles),
	)
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the loaded config, or the defaults when none was stored.
func configFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.DefaultConfig()
}
