package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resumed/internal/config"
	"github.com/jonathan/resumed/internal/logging"
	"github.com/jonathan/resumed/internal/observability"
	"github.com/jonathan/resumed/internal/rendering"
	"github.com/jonathan/resumed/internal/resume"
	"github.com/jonathan/resumed/internal/themes"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	output     string
	theme      string
	browserBin string
	timeout    time.Duration
	paper      string
}

func addRenderFlags(cmd *cobra.Command, f *renderFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", config.DefaultOutput, "Output filename (.pdf prints with a headless browser)")
	cmd.Flags().StringVarP(&f.theme, "theme", "t", "", "Theme to use (overrides .meta.theme)")
	cmd.Flags().StringVarP(&f.browserBin, "browser_bin", "b", "", "Chrome/Chromium executable used for PDF output")
	cmd.Flags().DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "Maximum time to wait for the browser when printing a PDF")
	cmd.Flags().StringVar(&f.paper, "paper", config.DefaultPaperFormat, "PDF paper format: A4 or Letter")
}

func newRenderCmd(a *app) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:     "render [filename]",
		Aliases: []string{"export"},
		Short:   "Render resume",
		Long:    "Renders a resume (default resume.json) with a theme and writes HTML, or PDF when the output ends in .pdf.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, flags, args)
		},
	}
	addRenderFlags(cmd, flags)

	return cmd
}

func runRender(cmd *cobra.Command, a *app, flags *renderFlags, args []string) error {
	logger := logging.GetLogger("render")
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if err := a.loadConfig(); err != nil {
		return err
	}

	filename := filenameArg(args)

	doc, err := resume.Load(filename)
	if err != nil {
		return err
	}

	themeName, err := themes.SelectName(flags.theme, doc)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "No theme to use. Please specify one via the %s option or the %s field of your resume.\n",
			highlight("--theme"), highlight(".meta.theme"))
		return handled(err)
	}

	theme, err := a.registry.Resolve(themeName)
	if err != nil {
		var notFound *themes.NotFoundError
		var loadErr *themes.LoadError
		if errors.As(err, &notFound) || errors.As(err, &loadErr) {
			logger.Debug().Err(err).Str("theme", themeName).Msg("Theme resolution failed")
			_, _ = fmt.Fprintf(stderr, "Could not load theme %s. Is it installed?\n", highlight(themeName))
			if names := a.registry.Names(); len(names) > 0 {
				_, _ = fmt.Fprintf(stderr, "Available themes: %s\n", strings.Join(names, ", "))
			}
			return handled(err)
		}
		return err
	}

	if plugin, ok := theme.(*themes.ExecTheme); ok {
		logger.Info().Str("theme", themeName).Str("plugin", plugin.Path()).Msg("Using theme plugin")
	}

	opts := renderOptions(cmd, a.cfg, flags)

	if a.verbosity > 0 {
		if typed, err := doc.Typed(); err == nil {
			observability.NewPrinter(stdout).PrintResumeSummary(typed, themeName)
		}
	}

	markup, err := rendering.Render(ctx, theme, doc)
	if err != nil {
		return err
	}

	if err := a.writer.Write(ctx, markup, opts); err != nil {
		var timeoutErr *rendering.TimeoutError
		if errors.As(err, &timeoutErr) {
			_, _ = fmt.Fprintf(stderr, "Timed out after %s waiting for the browser to print %s. Try a longer %s.\n",
				timeoutErr.Timeout, highlight(opts.Output), highlight("--timeout"))
			return handled(err)
		}
		return err
	}

	if a.verbosity > 0 {
		format := "HTML"
		if rendering.IsPDF(opts.Output) {
			format = "PDF"
		}
		if info, err := os.Stat(opts.Output); err == nil {
			observability.NewPrinter(stdout).PrintOutput(opts.Output, format, int(info.Size()))
		}
	}

	_, _ = fmt.Fprintf(stdout, "You can find your rendered resume at %s. Nice work! 🚀\n", highlight(opts.Output))
	return nil
}

// renderOptions merges flags over config values; flags only win when set explicitly.
func renderOptions(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) rendering.Options {
	merged := cfg.MergeWithDefaults(config.Config{})

	opts := rendering.Options{
		Output:      merged.Output,
		BrowserBin:  merged.BrowserBin,
		Timeout:     merged.TimeoutDuration(),
		PaperFormat: merged.PaperFormat,
	}

	if cmd.Flags().Changed("output") {
		opts.Output = flags.output
	}
	if cmd.Flags().Changed("browser_bin") {
		opts.BrowserBin = flags.browserBin
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = flags.timeout
	}
	if cmd.Flags().Changed("paper") {
		opts.PaperFormat = flags.paper
	}

	return opts
}

func filenameArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return resume.DefaultFilename
}
