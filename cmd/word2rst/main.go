// Package main is the entry point for the word2rst command, the CLI
// front end of the rstword conversion library. It reads one exported
// HTML document, writes the converted reStructuredText, and optionally
// unpacks embedded image payloads next to it.
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	rstword "github.com/ericb-bissell/rst-word-addin"
	"github.com/ericb-bissell/rst-word-addin/model"
)

var (
	output      string
	imagesDir   string
	configPath  string
	overline    bool
	wrap        int
	stylePrefix string
	charsetName string
	verbose     bool

	log zerolog.Logger
)

// fileConfig mirrors the conversion flags for the optional TOML config
// file. Flags set on the command line win over file values.
type fileConfig struct {
	Output      string `toml:"output"`
	Images      string `toml:"images"`
	Overline    bool   `toml:"overline"`
	Wrap        int    `toml:"wrap"`
	StylePrefix string `toml:"style-prefix"`
	Charset     string `toml:"charset"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "word2rst [input.html]",
		Short: "Convert word-processor HTML to reStructuredText",
		Long: `word2rst converts HTML exported by Microsoft Word (and editors that
imitate it) to reStructuredText. It reads the named file, or stdin when
no file is given, and prints the RST to stdout.

Conversion problems that do not prevent output (unembedded images,
suspicious markup) are reported on stderr and leave the exit code zero.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setup,
		RunE:              run,
		SilenceUsage:      true,
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write RST to this file instead of stdout")
	rootCmd.Flags().StringVar(&imagesDir, "images", "", "write embedded image payloads into this directory")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with flag defaults")
	rootCmd.Flags().BoolVar(&overline, "overline", false, "overline top-level headings")
	rootCmd.Flags().IntVar(&wrap, "wrap", 0, "wrap paragraphs at this column (0 disables)")
	rootCmd.Flags().StringVar(&stylePrefix, "style-prefix", "", "Word style prefix marking directive blocks")
	rootCmd.Flags().StringVar(&charsetName, "charset", "", "input charset, overriding detection")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup initializes logging and folds config-file values into the flags.
func setup(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	return applyConfig(cmd)
}

// applyConfig reads the TOML config file when one was named. A file value
// applies only to flags left at their defaults on the command line.
func applyConfig(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return fmt.Errorf("reading config %s: %w", configPath, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("output") {
		output = cfg.Output
	}
	if !flags.Changed("images") {
		imagesDir = cfg.Images
	}
	if !flags.Changed("overline") {
		overline = cfg.Overline
	}
	if !flags.Changed("wrap") {
		wrap = cfg.Wrap
	}
	if !flags.Changed("style-prefix") {
		stylePrefix = cfg.StylePrefix
	}
	if !flags.Changed("charset") {
		charsetName = cfg.Charset
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	res, err := converter(args).Convert()
	if err != nil {
		return err
	}

	// Warnings are advisory; they never change the exit code.
	for _, w := range res.Warnings {
		log.Warn().Msg(string(w))
	}

	if imagesDir != "" {
		if err := writeImages(imagesDir, res.Images); err != nil {
			return err
		}
	}

	return writeOutput(res.Text)
}

// converter builds the conversion chain from the resolved flag values.
func converter(args []string) *rstword.Converter {
	var conv *rstword.Converter
	if len(args) == 1 {
		conv = rstword.Open(args[0])
	} else {
		conv = rstword.FromReader(os.Stdin)
	}

	if overline {
		conv = conv.HeadingOverline()
	}
	if wrap > 0 {
		conv = conv.WrapWidth(wrap)
	}
	if stylePrefix != "" {
		conv = conv.DirectiveStylePrefix(stylePrefix)
	}
	if charsetName != "" {
		conv = conv.Charset(charsetName)
	}
	return conv
}

func writeOutput(text string) error {
	if output == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Debug().Str("path", output).Msg("wrote output")
	return nil
}

// writeImages decodes embedded payloads into dir, one file per reference.
// A ref without a payload points at an external source the document never
// embedded; the RST keeps its original URI, so it is skipped here.
func writeImages(dir string, images []*model.ImageRef) error {
	if len(images) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating image directory: %w", err)
	}

	for _, ref := range images {
		if ref.Base64Data == "" {
			log.Debug().Str("file", ref.Filename).Msg("skipping external image")
			continue
		}
		data, err := base64.StdEncoding.DecodeString(ref.Base64Data)
		if err != nil {
			return fmt.Errorf("decoding image %s: %w", ref.Filename, err)
		}
		path := filepath.Join(dir, ref.Filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing image %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("wrote image")
	}
	return nil
}
