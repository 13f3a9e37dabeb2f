package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eringen/pubdocs"
	"github.com/eringen/pubdocs/config"
	"github.com/eringen/pubdocs/logging"
	"github.com/eringen/pubdocs/socialcard"
	"github.com/eringen/pubdocs/theme"
	"github.com/eringen/pubdocs/views"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logPretty  bool
	logConfig  string
}

func (f *rootFlags) loadTheme() (*theme.Config, error) {
	return config.Load(f.configPath)
}

// newRootCommand creates the pubdocs command tree. Every subcommand that
// needs the theme loads and validates it first and fails before doing
// anything else.
func newRootCommand(ctx context.Context) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "pubdocs",
		Short:         "Validate and serve a documentation site's theme configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logConfig != "" {
				return logging.LoadFile(flags.logConfig)
			}
			return logging.Setup(cmd.ErrOrStderr(), flags.logLevel, flags.logPretty)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", os.Getenv("PUBDOCS_CONFIG"),
		"Theme configuration file (YAML). Defaults and PUBDOCS_* environment variables apply when empty.")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info",
		"Log level (trace, debug, info, warn, error).")
	cmd.PersistentFlags().BoolVar(&flags.logPretty, "log-pretty", false,
		"Human-readable console logs instead of JSON.")
	cmd.PersistentFlags().StringVar(&flags.logConfig, "log-config", "",
		"zeroconfig YAML file; overrides --log-level and --log-pretty.")

	cmd.AddCommand(
		newServeCommand(ctx, flags),
		newValidateCommand(flags),
		newHeadCommand(flags),
		newFooterCommand(flags),
		newTitleCommand(flags),
		newEditLinkCommand(flags),
		newDumpCommand(flags),
		newCardCommand(flags),
		newInitCommand(),
		newVersionCommand(),
	)
	return cmd
}

func newServeCommand(ctx context.Context, flags *rootFlags) *cobra.Command {
	cfg := pubdocs.ServerConfig{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the theme API to the documentation framework",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			app := pubdocs.New(t, cfg)

			errCh := make(chan error, 1)
			go func() { errCh <- app.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", ":3000", "Listen address.")
	cmd.Flags().DurationVar(&cfg.CardCacheTTL, "card-cache-ttl", time.Hour, "How long rendered social cards are cached.")
	cmd.Flags().IntVar(&cfg.CardCacheSize, "card-cache-size", 256, "Maximum number of cached social cards.")
	cmd.Flags().IntVar(&cfg.CardRenderLimit, "card-render-limit", 30, "Social card renders allowed per client IP per window.")
	cmd.Flags().DurationVar(&cfg.CardRenderWindow, "card-render-window", time.Minute, "Window for --card-render-limit.")
	cmd.Flags().StringSliceVar(&cfg.AllowOrigins, "allow-origin", []string{"*"}, "Origins allowed to call the API (CORS).")
	return cmd
}

func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the theme configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := flags.loadTheme(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "theme configuration is valid")
			return nil
		},
	}
}

func newHeadCommand(flags *rootFlags) *cobra.Command {
	var (
		title  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "head [path]",
		Short: "Print the head tags for a request path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			h := t.HeadMetadata(path)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(h.Tags())
			}
			return views.Head(h, t.Title(title)).Render(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&title, "page", "", "Page title substituted into the title template.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tags as JSON.")
	return cmd
}

func newFooterCommand(flags *rootFlags) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "footer",
		Short: "Print the footer text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.FooterText(year).Text())
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year to print (default: current year).")
	return cmd
}

func newTitleCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "title <page>",
		Short: "Apply the title template to a page title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Title(args[0]))
			return nil
		},
	}
}

func newEditLinkCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit-link <file>",
		Short: "Print the edit link for a docs source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.EditURL(args[0]))
			return nil
		},
	}
}

func newDumpCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective theme configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), t.Settings())
		},
	}
}

func newCardCommand(flags *rootFlags) *cobra.Command {
	var title, out string
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Render the social card PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.loadTheme()
			if err != nil {
				return err
			}
			if title == "" {
				title = t.HeadMetadata("").Title
			}
			data, err := socialcard.Bytes(socialcard.Card{
				Title:      title,
				SiteName:   t.Logo().Text,
				Background: t.AccentColor(),
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write card: %w", err)
			}
			log.Info().Str("path", out).Int("bytes", len(data)).Msg("social card written")
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "page", "", "Page title for the card (default: head title).")
	cmd.Flags().StringVarP(&out, "out", "o", "og.png", "Output file.")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pubdocs version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pubdocs %s\n", version)
		},
	}
}
