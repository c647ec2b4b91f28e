package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/moneyfmt/internal/config"
	"github.com/rpgo/moneyfmt/internal/format"
	money "github.com/rpgo/moneyfmt/pkg/decimal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	rounding   string
	output     string
	total      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "moneyfmt [amount ...]",
		Short: "Format amounts as fixed two-decimal strings",
		Long: `Format each amount with exactly two fractional digits.

Amounts are plain decimal literals such as 123, -2 or 1.23456789. With no
arguments, one amount per line is read from stdin; blank lines are skipped.
Put negative amounts after -- so they are not read as flags:

  moneyfmt -- -1.23456789

Rounding modes: ` + strings.Join(format.RoundingModeNames(), ", ") + `
Output formats: ` + strings.Join(format.AvailableFormatterNames(), ", "),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.rounding, "rounding", "r", string(format.DefaultRounding), "rounding mode")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format")
	flags.BoolVar(&opts.total, "total", false, "append the sum of all amounts")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log rounding decisions to stderr")
	return cmd
}

func runFormat(cmd *cobra.Command, opts *rootOptions, args []string) error {
	log := stderrLogger{w: cmd.ErrOrStderr(), verbose: opts.verbose}

	cfg := config.Default()
	loader := config.NewLoader()
	if opts.configPath != "" {
		loaded, err := loader.LoadFromFile(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Infof("loaded config from %s", opts.configPath)
	}
	// explicit flags win over the config file
	if cmd.Flags().Changed("rounding") {
		cfg.Rounding = opts.rounding
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = opts.output
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	mode, err := cfg.RoundingMode()
	if err != nil {
		return err
	}
	report, err := format.LookupFormatter(cfg.Output)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readAmounts(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(inputs) == 0 {
		log.Warnf("no amounts given")
	}

	mf := format.NewMoneyFormatter(format.WithRounding(mode), format.WithLogger(log))
	entries, err := mf.FormatAll(inputs)
	if err != nil {
		return err
	}

	if opts.total {
		amounts := make([]money.Money, 0, len(inputs))
		for _, in := range inputs {
			m, err := money.NewMoneyFromString(in)
			if err != nil {
				return err
			}
			amounts = append(amounts, m)
		}
		entries = append(entries, format.Entry{Input: "total", Formatted: money.Sum(amounts...).Format(mf)})
	}

	out, err := report.Format(entries)
	if err != nil {
		return fmt.Errorf("%s output: %w", report.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func readAmounts(r io.Reader) ([]string, error) {
	var amounts []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		amounts = append(amounts, line)
	}
	return amounts, sc.Err()
}
