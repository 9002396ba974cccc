package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/repository"
	"go.uber.org/zap"
)

var errKafkaDisabled = errors.New("mailer needs kafka brokers (set kafka.brokers or SOLID_KAFKA_BROKERS)")

func (a *app) mailerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mailer",
		Short: "Consume welcome email events and print them until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Kafka.Enabled() {
				return errKafkaDisabled
			}

			consumer, err := repository.NewKafkaConsumer[entities.WelcomeEmail](a.kafkaParams(), a.logger)
			if err != nil {
				return fmt.Errorf("start welcome email consumer: %w", err)
			}
			defer consumer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			for {
				select {
				case <-ctx.Done():
					a.logger.Info("mailer stopped")
					return nil
				case email, ok := <-consumer.ToConsumeBuffered():
					if !ok {
						return nil
					}
					a.logger.Debug("welcome email received", zap.String("email", string(email.Email)))
					fmt.Fprintf(out, "welcome email for %s <%s>\n", email.Name, email.Email)
				}
			}
		},
	}
}
