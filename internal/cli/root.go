package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/guessing-game/assets"
	"github.com/robalobadob/guessing-game/internal/config"
	"github.com/robalobadob/guessing-game/internal/console"
	"github.com/robalobadob/guessing-game/internal/game"
	"github.com/robalobadob/guessing-game/internal/logging"
	"github.com/robalobadob/guessing-game/internal/random"
)

// ErrAborted is returned when input ends before the number is guessed.
var ErrAborted = errors.New("session aborted")

// NewRootCmd builds the guess command.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgFile       string
		logLevel      string
		reportInvalid bool
		noColor       bool
		secret        int
	)

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number between 1 and 100",
		Long: `guess picks a secret number from 1 to 100 and reads guesses from
standard input, one per line, answering "too low" or "too big" until
the number is found.

Lines that are not a non-negative whole number are ignored. Exits 0 once
the number is guessed and 1 if input ends first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the user set override file and environment values.
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				v.Set("log_level", logLevel)
			}
			if flags.Changed("report-invalid") {
				v.Set("report_invalid", reportInvalid)
			}
			if noColor {
				v.Set("color", false)
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())

			var src game.RandomSource = random.NewCrypto()
			if cmd.Flags().Changed("secret") {
				src = random.NewSequence(secret)
			}
			return play(cmd, cfg, src)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./guess.yaml or $HOME/.config/guess/guess.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&reportInvalid, "report-invalid", true, "print a message for lines that are not a number")
	flags.BoolVar(&noColor, "no-color", false, "disable styled output")
	flags.IntVar(&secret, "secret", 0, "use a fixed secret (testing)")
	_ = flags.MarkHidden("secret")

	return cmd
}

// Execute runs the guess command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// play runs one session against the command's stdin and stdout.
func play(cmd *cobra.Command, cfg config.Config, src game.RandomSource) error {
	msgs, err := assets.LoadMessages(cfg.MessagesFile)
	if err != nil {
		return err
	}

	sess, err := game.New(src, game.WithReportInvalid(cfg.ReportInvalid))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	printer := console.NewPrinter(cmd.OutOrStdout(), msgs, cfg.Color)
	printer.Welcome()

	outcome, err := sess.Run(console.NewLineReader(cmd.InOrStdin()), printer)
	if outcome == game.OutcomeAborted {
		printer.Aborted()
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	log.Debug().Int("attempts", sess.Attempts()).Msg("player won")
	return nil
}
