// Command ncdu-import converts a CSV or `du -a -b` file size listing into
// an export that `ncdu -f` can browse.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ncdu-import/internal/config"
	"ncdu-import/internal/filter"
	"ncdu-import/internal/importer"
	"ncdu-import/internal/logging"
	"ncdu-import/internal/ncdu"
	"ncdu-import/internal/progress"
	"ncdu-import/internal/tree"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = ncdu.ProgVer

type options struct {
	configPath string
	output     string
	pathColumn string
	sizeColumn string
	isDuOutput bool
	exclude    []string
	compact    bool
	progress   bool
	verbose    bool
	color      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ncdu-import [flags] <input>",
		Short: "Convert a file size listing into an ncdu export",
		Long: `Convert a CSV listing of file paths and sizes, or the output of
"du -a -b", into the JSON export format read by "ncdu -f".

Use "-" as <input> to read standard input.`,
		Example: `  ncdu-import files.csv -o usage.json
  du -a -b . | ncdu-import --is-du-output - | ncdu -f -`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "YAML config file")
	f.StringVarP(&opts.output, "output", "o", "-", `Output JSON file ("-" for standard output)`)
	f.StringVar(&opts.pathColumn, "path-column", "name", "Column holding file paths")
	f.StringVar(&opts.sizeColumn, "size-column", "size", "Column holding file sizes")
	f.BoolVar(&opts.isDuOutput, "is-du-output", false, `Input is the output of "du -a -b" instead of CSV`)
	f.StringSliceVarP(&opts.exclude, "exclude", "x", nil, `Drop records matching a glob ("dir/" matches a path segment)`)
	f.BoolVar(&opts.compact, "compact", false, "Write compact JSON instead of indented")
	f.BoolVar(&opts.progress, "progress", false, "Show a progress bar on stderr while building the tree")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	f.StringVar(&opts.color, "color", string(logging.ColorAuto), "Colored logs: auto | always | never")

	return cmd
}

// loadConfig reads the config file and applies every flag the user set explicitly.
func loadConfig(flags *pflag.FlagSet, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("path-column") {
		cfg.PathColumn = opts.pathColumn
	}
	if flags.Changed("size-column") {
		cfg.SizeColumn = opts.sizeColumn
	}
	if flags.Changed("is-du-output") {
		cfg.IsDuOutput = opts.isDuOutput
	}
	if flags.Changed("compact") {
		cfg.Compact = opts.compact
	}
	cfg.Exclude = append(cfg.Exclude, opts.exclude...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, input string) error {
	colorMode, err := logging.ParseColorMode(opts.color)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), colorMode, opts.verbose)

	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	r, closeInput, err := openInput(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeInput()

	if cfg.IsDuOutput {
		log.Info("Reading du output from %s", displayName(input))
	} else {
		log.Info("Reading CSV from %s (path column %q, size column %q)", displayName(input), cfg.PathColumn, cfg.SizeColumn)
	}

	files, err := importer.Import(r, importer.Options{
		PathColumn: cfg.PathColumn,
		SizeColumn: cfg.SizeColumn,
		DuOutput:   cfg.IsDuOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", displayName(input), err)
	}
	log.Info("Read %d records", len(files))

	files, excluded := filter.Exclude(files, cfg.Exclude)
	if excluded > 0 {
		log.Info("Excluded %d records matching %v", excluded, cfg.Exclude)
	}

	fileTree := buildTree(cmd.ErrOrStderr(), files, opts.progress, log)

	stats := fileTree.Stats()
	log.Info("Tree: %d files, %d directories, %s", stats.Files, stats.Directories, tree.FormatSize(stats.TotalSize))

	fingerprint, err := fileTree.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to fingerprint tree: %w", err)
	}
	log.Info("Fingerprint: %s", fingerprint)

	export := ncdu.FromTree(fileTree)
	indent := !cfg.Compact

	if cfg.OutputFile == "-" {
		if err := ncdu.Write(cmd.OutOrStdout(), export, indent); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}

	if err := ncdu.Save(export, cfg.OutputFile, indent); err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}
	log.Success("Wrote %s", cfg.OutputFile)
	return nil
}

func buildTree(stderr io.Writer, files []tree.SizedFile, showProgress bool, log *logging.Logger) *tree.Tree {
	builder := tree.NewBuilder()

	var bar *progress.Bar
	if showProgress {
		if f, ok := stderr.(*os.File); ok && progress.IsTerminal(f) {
			bar = progress.New(int64(len(files)), stderr)
			builder.WithProgress(bar)
		} else {
			log.Debug("Progress bar disabled: stderr is not a terminal")
		}
	}

	for _, f := range files {
		builder.Add(f)
	}
	if bar != nil {
		bar.Finish()
	}

	bs := builder.Stats()
	if bs.Dropped > 0 || bs.Replaced > 0 {
		log.Debug("Directories won %d conflicts: %d file records dropped, %d earlier files replaced",
			bs.Dropped+bs.Replaced, bs.Dropped, bs.Replaced)
	}
	return builder.Tree()
}

func openInput(input string, stdin io.Reader) (io.Reader, func(), error) {
	if input == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w: %v", importer.ErrIO, err)
	}
	return f, func() { f.Close() }, nil
}

func displayName(input string) string {
	if input == "-" {
		return "standard input"
	}
	return input
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
