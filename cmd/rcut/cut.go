package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fractalqb/rcut"
	"github.com/fractalqb/rcut/internal/config"
)

const stdinName = "-"

type cutCmd struct {
	cobra.Command
	fields, bytes, chars string
	delim, joiner        string
	tab, nul             bool
	complement           bool
	zeroTerm             bool
	onlyDelim            bool
	graphemes            bool
	envFile              string
}

func newCutCmd() *cutCmd {
	cmd := &cutCmd{
		Command: cobra.Command{
			Use:   "rcut [flags] [file...]",
			Short: "Cut fields, bytes or characters from each record",
			Long: `Cut fields, bytes or characters from each record of the input files,
or standard input if no file or "-" is given.

Range lists are comma-separated lists of the ranges:
   N    the N-th token
   A-B  tokens A through B, if A > B in reverse order
   A-   token A through the last token
   -B   the first token through token B
   -    all tokens
   ~    all tokens in reverse order`,
			Version:       version,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	cmd.RunE = cmd.cut
	flags := cmd.Flags()
	flags.StringVarP(&cmd.fields, "fields", "f", "",
		"Select the fields in range list")
	flags.StringVarP(&cmd.bytes, "bytes", "b", "",
		"Select the bytes in range list")
	flags.StringVarP(&cmd.chars, "characters", "c", "",
		"Select the characters in range list")
	flags.StringVarP(&cmd.delim, "delimiter", "d", "",
		"Set field delimiter, default is to split at white space")
	flags.BoolVarP(&cmd.tab, "tab", "t", false,
		"Use TAB as field delimiter")
	flags.BoolVarP(&cmd.nul, "nul-delimiter", "Z", false,
		"Use NUL as field delimiter")
	flags.StringVarP(&cmd.joiner, "joiner", "j", "",
		"Join selected parts with `string`, default is the delimiter")
	flags.BoolVar(&cmd.complement, "complement", false,
		"Select what is not in range list")
	flags.BoolVarP(&cmd.zeroTerm, "zero-terminated", "z", false,
		"Records are terminated by NUL instead of newline")
	flags.BoolVarP(&cmd.onlyDelim, "only-delimited", "s", false,
		"Drop records without delimiter")
	flags.BoolVarP(&cmd.graphemes, "graphemes", "g", false,
		"Characters are grapheme clusters instead of code points")
	flags.StringVar(&cmd.envFile, "env-file", "",
		"Load environment defaults from dotenv `file`")
	cmd.MarkFlagsOneRequired("fields", "bytes", "characters")
	cmd.MarkFlagsMutuallyExclusive("fields", "bytes", "characters")
	cmd.MarkFlagsMutuallyExclusive("delimiter", "tab", "nul-delimiter")
	return cmd
}

func (cmd *cutCmd) config() (cfg rcut.Config) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("fields"):
		cfg.Mode, cfg.Ranges = rcut.Fields, cmd.fields
	case flags.Changed("bytes"):
		cfg.Mode, cfg.Ranges = rcut.Bytes, cmd.bytes
	case flags.Changed("characters"):
		cfg.Mode, cfg.Ranges = rcut.Characters, cmd.chars
	}
	switch {
	case flags.Changed("delimiter"):
		cfg.Delimiter = []byte(cmd.delim)
	case cmd.tab:
		cfg.Delimiter = []byte{'\t'}
	case cmd.nul:
		cfg.Delimiter = []byte{0}
	}
	if flags.Changed("joiner") {
		cfg.Joiner = &cmd.joiner
	}
	cfg.Complement = cmd.complement
	cfg.ZeroTerminated = cmd.zeroTerm
	cfg.OnlyDelimited = cmd.onlyDelim
	cfg.Graphemes = cmd.graphemes
	return cfg
}

func (cmd *cutCmd) cut(_ *cobra.Command, files []string) error {
	env, err := config.Load(cmd.envFile)
	if err != nil {
		return err
	}
	log, err := newLogger(env, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg := cmd.config()
	cfg.MaxRecord = env.MaxRecord
	cutter, err := rcut.NewCutter(cfg)
	if err != nil {
		return err
	}
	log.Debug().
		Stringer("mode", cutter.Mode()).
		Stringer("ranges", cutter.Ranges()).
		Bool("complement", cfg.Complement).
		Msg("configured")
	if len(files) == 0 {
		files = []string{stdinName}
	}
	for _, f := range files {
		if err = cmd.cutFile(cutter, log, f); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *cutCmd) cutFile(cutter *rcut.Cutter, log zerolog.Logger, name string) error {
	var in io.Reader
	if name == stdinName {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	flog := log.With().Str("input", name).Logger()
	cutter.OnSkip = func(recNo int, _ []byte, err error) {
		flog.Warn().Int("record", recNo).Err(err).Msg("skipping record")
	}
	stats, err := cutter.Cut(cmd.OutOrStdout(), in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	flog.Debug().
		Int("records", stats.Records).
		Int("written", stats.Written).
		Int("filtered", stats.Filtered).
		Int("skipped", stats.Skipped).
		Msg("done")
	return nil
}
