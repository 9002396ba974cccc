package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/whiteelite/solid/internal/config"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/domain/repositories"
	"github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/repository"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type producerFactory func(repository.KafkaMessageQueueParams, *zap.Logger) (repositories.MessageQueueProducer[entities.WelcomeEmail], error)

// app carries the state shared by every subcommand once the root
// command's PersistentPreRunE has run.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	buildLogger func(level string, verbose bool) (*zap.Logger, error)
	newProducer producerFactory
}

func newApp() *app {
	return &app{
		logger:      zap.NewNop(),
		buildLogger: newLogger,
		newProducer: func(p repository.KafkaMessageQueueParams, l *zap.Logger) (repositories.MessageQueueProducer[entities.WelcomeEmail], error) {
			return repository.NewKafkaProducer[entities.WelcomeEmail](p, l)
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "solid",
		Short: "Run the SOLID design principle examples",
		Long: `solid runs the before/after examples for the five SOLID principles
and prints what each example writes to the console.

  srp  single responsibility: DatabaseService and EmailService
  ocp  open/closed: category discounts
  lsp  Liskov substitution: movers
  isp  interface segregation: workers
  dip  dependency inversion: a switch and its devices`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := a.buildLogger(cfg.Log.Level, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.srpCmd(),
		a.ocpCmd(),
		a.lspCmd(),
		a.ispCmd(),
		a.dipCmd(),
		a.allCmd(),
		a.mailerCmd(),
	)

	return root
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// close flushes the logger. It runs after Execute whether or not the
// command failed.
func (a *app) close() {
	_ = a.logger.Sync()
}

func main() {
	a := newApp()
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
