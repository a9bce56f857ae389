package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghuser/fridgekeeper/pkg/config"
	"github.com/ghuser/fridgekeeper/pkg/events"
	"github.com/ghuser/fridgekeeper/pkg/logger"
	fridgeevents "github.com/ghuser/fridgekeeper/services/fridge/domain/events"
)

type publishOptions struct {
	file string
}

func newPublishCmd(root *rootOptions) *cobra.Command {
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a scenario to a running fridgekeeper",
		Long: `Publish every event of a scenario file, in file order, to the fridge
topic on the configured event bus. Requires EVENTS_BACKEND=postgres so that a separate
fridgekeeper process can consume the events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := LoadScenario(opts.file)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.EventsBackend != config.EventsPostgres {
				return fmt.Errorf("publish needs EVENTS_BACKEND=%s, got %q", config.EventsPostgres, cfg.EventsBackend)
			}

			log := logger.NewWithWriter(cmd.ErrOrStderr(), root.logLevel)
			bus, err := events.NewEventBus(cfg, log)
			if err != nil {
				return err
			}
			defer bus.Close() //nolint:errcheck

			return publishScenario(cmd.Context(), cmd.OutOrStdout(), bus, sc, time.Now().UTC())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Scenario YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

type jsonPublisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// toEvents maps scenario steps onto fridge events with fresh event IDs.
func toEvents(sc *Scenario, now time.Time) []fridgeevents.FridgeEvent {
	out := make([]fridgeevents.FridgeEvent, 0, len(sc.Events))
	for _, ev := range sc.Events {
		switch ev.Op {
		case opAdd:
			out = append(out, fridgeevents.ItemAdded(ev.ItemType, ev.ItemUUID, ev.Name, *ev.FillFactor, now))
		case opRemove:
			out = append(out, fridgeevents.ItemRemoved(ev.ItemUUID, now))
		case opForget:
			out = append(out, fridgeevents.ItemTypeForgotten(ev.ItemType, now))
		}
	}
	return out
}

func publishScenario(ctx context.Context, w io.Writer, pub jsonPublisher, sc *Scenario, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}
	msgs := toEvents(sc, now)
	for i, m := range msgs {
		if err := pub.PublishJSON(ctx, fridgeevents.Topic, m); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	fmt.Fprintf(w, "published %d event(s)\n", len(msgs))
	return nil
}
