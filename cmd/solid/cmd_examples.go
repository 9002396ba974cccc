package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/whiteelite/solid/internal/dip"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/solid/internal/isp"
	"github.com/whiteelite/solid/internal/lsp"
	"github.com/whiteelite/solid/internal/ocp"
	"github.com/whiteelite/solid/internal/srp"
	"go.uber.org/zap"
)

func (a *app) srpCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "srp",
		Short: "Save a user and send the welcome email through separate services",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSRP(cmd.OutOrStdout(), name, email)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Ada", "user name")
	cmd.Flags().StringVar(&email, "email", "ada@example.com", "user email")
	return cmd
}

func (a *app) runSRP(out io.Writer, name, email string) error {
	opts := []srp.Option{srp.WithOutput(out), srp.WithLogger(a.logger)}

	if a.cfg.Kafka.Enabled() {
		producer, err := a.newProducer(a.kafkaParams(), a.logger)
		if err != nil {
			return fmt.Errorf("start welcome email producer: %w", err)
		}
		defer producer.Close()
		opts = append(opts, srp.WithQueue(producer))
	}

	a.logger.Debug("running srp example", zap.String("name", name))
	srp.NewDatabaseService(name, email, opts...).Save()
	srp.NewEmailService(name, email, opts...).SendWelcomeEmail()
	return nil
}

func (a *app) ocpCmd() *cobra.Command {
	var category, price string

	cmd := &cobra.Command{
		Use:   "ocp",
		Short: "Calculate the discount for a priced item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOCP(cmd.OutOrStdout(), entities.Category(category), price)
		},
	}

	cmd.Flags().StringVar(&category, "category", string(entities.CategoryClothing), "item category")
	cmd.Flags().StringVar(&price, "price", "100", "item price")
	return cmd
}

func (a *app) runOCP(out io.Writer, category entities.Category, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}

	a.logger.Debug("running ocp example", zap.String("category", string(category)), zap.String("price", p.String()))
	discount, err := ocp.DefaultRegistry().Calculate(entities.PricedItem{Category: category, Price: p})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s discount on %s: %s\n", category, p, discount)
	return nil
}

func (a *app) lspCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Move every bird through the Mover abstraction",
		Run: func(cmd *cobra.Command, args []string) {
			a.logger.Debug("running lsp example")
			out := cmd.OutOrStdout()
			lsp.MoveAll(lsp.NewSparrow(out), lsp.NewOstrich(out))
		},
	}
}

func (a *app) ispCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isp",
		Short: "Put every worker to work and feed the ones that eat",
		Run: func(cmd *cobra.Command, args []string) {
			a.runISP(cmd.OutOrStdout())
		},
	}
}

func (a *app) runISP(out io.Writer) {
	a.logger.Debug("running isp example")
	for _, w := range []isp.Workable{isp.NewHuman(out), isp.NewRobot(out)} {
		w.Work()
		if e, ok := w.(isp.Eatable); ok {
			e.Eat()
		}
	}
}

func (a *app) dipCmd() *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "dip",
		Short: "Operate a switch wired to a device",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDevice(device, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			a.logger.Debug("running dip example", zap.String("device", device))
			dip.NewSwitch(d).Operate()
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "white", "device to switch: white or red")
	return cmd
}

func newDevice(name string, out io.Writer) (dip.Switchable, error) {
	switch name {
	case "white":
		return dip.NewLightBulbWhite(out), nil
	case "red":
		return dip.NewLightBulbRed(out), nil
	default:
		return nil, fmt.Errorf("unknown device %q", name)
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every example with its defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := a.runSRP(out, "Ada", "ada@example.com"); err != nil {
				return err
			}
			if err := a.runOCP(out, entities.CategoryClothing, "100"); err != nil {
				return err
			}
			lsp.MoveAll(lsp.NewSparrow(out), lsp.NewOstrich(out))
			a.runISP(out)
			dip.NewSwitch(dip.NewLightBulbWhite(out)).Operate()
			dip.NewSwitch(dip.NewLightBulbRed(out)).Operate()
			return nil
		},
	}
}

func (a *app) kafkaParams() repository.KafkaMessageQueueParams {
	return repository.KafkaMessageQueueParams{
		Brokers: a.cfg.Kafka.Brokers,
		Topic:   a.cfg.Kafka.Topic,
		GroupID: a.cfg.Kafka.GroupID,
	}
}
