package main

import (
	"os"

	"github.com/flowscan/tuple"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flags of the demo command
type config struct {
	first    int
	second   string
	literal  bool
	logLevel string
	noColor  bool
}

var cfg config

var rootCmd = &cobra.Command{
	Use:          "pairdemo",
	Short:        "Build, move, compare and print pairs",
	Args:         cobra.NoArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&cfg.first, "first", 1, "first value of the demo pair")
	rootCmd.Flags().StringVar(&cfg.second, "second", "asd", "second value of the demo pair")
	rootCmd.Flags().BoolVar(&cfg.literal, "literal", false, "compare with the literal field-wise predicates")
	rootCmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "zerolog level")
	rootCmd.Flags().BoolVar(&cfg.noColor, "no-color", false, "disable colored log output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.logLevel)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: cfg.noColor})

	mode := tuple.Lexicographic
	if cfg.literal {
		mode = tuple.Literal
	}
	comparator := tuple.OrderedComparator[int, string](mode)

	var x tuple.Pair[int, string]
	y := tuple.NewPair(cfg.first, cfg.second)
	a := tuple.MakePair(123, "a")
	log.Debug().Object("x", x).Object("y", y).Object("a", a).Msg("pairs created")

	x.MoveAssign(&y)
	log.Debug().Object("x", x).Object("y", y).Msg("y moved into x")

	log.Info().
		Str("mode", mode.String()).
		Bool("equal", comparator.Equal(x, a)).
		Bool("notEqual", comparator.NotEqual(x, a)).
		Bool("less", comparator.Less(x, a)).
		Bool("lessOrEqual", comparator.LessOrEqual(x, a)).
		Bool("greater", comparator.Greater(x, a)).
		Bool("greaterOrEqual", comparator.GreaterOrEqual(x, a)).
		Msg("x compared to a")

	printer := tuple.NewPrinter(cmd.OutOrStdout()).Print(a).Print(x)
	if err := printer.Err(); err != nil {
		return errors.Wrap(err, "print pairs")
	}
	log.Debug().Int64("bytes", printer.Written()).Msg("pairs printed")
	return nil
}
