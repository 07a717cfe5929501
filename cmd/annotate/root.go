package main

import (
	"errors"
	"fmt"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/bootstrap"
	"seed-geocoder/internal/config"
	"seed-geocoder/internal/logging"
	"seed-geocoder/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const successMessage = "✅ Added coordinates to all listings!"

var errNoMatches = errors.New("no location of the table was found in the seed file")

type annotateOptions struct {
	configDir string
	mode      string
	source    string
	tableFile string
	indent    string
	dryRun    bool
	strict    bool
	verbose   bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &annotateOptions{}

	cmd := &cobra.Command{
		Use:   "annotate [seed-file]",
		Short: "Insert latitude/longitude fields into a seed file",
		Long: `Rewrites the seed file in place, adding latitude and longitude fields to every
record whose city and district are in the coordinate table.

Modes:
  city-district    after 'district: "<D>",' when it follows 'city: "<C>",'
  district-images  between 'district: "<D>",' and 'images:'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, args, opts, fs)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config", "configs", "Directory holding app.env")
	flags.StringVarP(&opts.mode, "mode", "m", "", "Anchor mode: city-district or district-images")
	flags.StringVar(&opts.source, "source", "", "Table source: static, file or postgres")
	flags.StringVarP(&opts.tableFile, "table", "t", "", "YAML or CSV coordinate table (implies --source file)")
	flags.StringVar(&opts.indent, "indent", "", "Indentation of record fields (default four spaces)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Report what would be inserted without writing the file")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when no location was inserted")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every location that was not found")

	return cmd
}

func runAnnotate(cmd *cobra.Command, args []string, opts *annotateOptions, fs afero.Fs) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.AnnotateMode = opts.mode
	}
	if flags.Changed("table") {
		cfg.TableFile = opts.tableFile
		cfg.TableSource = config.SourceFile
	}
	if flags.Changed("source") {
		cfg.TableSource = opts.source
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.SetupWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	mode, err := annotator.ParseMode(cfg.AnnotateMode)
	if err != nil {
		return err
	}

	path := cfg.SeedFile
	if len(args) == 1 {
		path = args[0]
	}

	sources, err := bootstrap.OpenSources(ctx, cfg, fs)
	if err != nil {
		return err
	}
	defer sources.Close()

	svc := service.NewAnnotateService(sources.Table, fs)
	if opts.indent != "" {
		svc = svc.WithOptions(annotator.Options{Indent: opts.indent})
	}

	report, err := svc.AnnotateFile(ctx, path, mode, opts.dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		for _, m := range report.Matches {
			fmt.Fprintf(out, "%s/%s: %d\n", m.Key.City, m.Key.District, m.Count)
		}
		fmt.Fprintf(out, "%d insertions, %d locations not found\n", report.Inserted, len(report.Missing))
		return nil
	}

	if opts.strict && report.Inserted == 0 {
		return errNoMatches
	}

	log.Debug().Str("file", path).Msg("done")
	fmt.Fprintln(out, successMessage)
	return nil
}
