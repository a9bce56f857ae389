package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/ghuser/fridgekeeper/pkg/logger"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
	"github.com/ghuser/fridgekeeper/services/fridge/domain"
	"github.com/ghuser/fridgekeeper/services/fridge/domain/models"
)

type reportOptions struct {
	file        string
	threshold   float64
	skipInvalid bool
	dump        bool
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Replay a scenario and print the restock report",
		Long: `Apply every event of a scenario file to an empty fridge, then list the
item types whose average fill is at or below the threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := LoadScenario(opts.file)
			if err != nil {
				return err
			}
			threshold := sc.ResolveThreshold(opts.threshold, cmd.Flags().Changed("threshold"))
			log := logger.NewWithWriter(cmd.ErrOrStderr(), root.logLevel)
			return runReport(cmd.Context(), cmd.OutOrStdout(), log, sc, threshold, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Scenario YAML file")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", defaultThreshold, "Restock threshold (overrides the scenario)")
	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip add events with an invalid fill factor instead of failing")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the inventory rendering after the report")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// replay applies sc to m. Returns the number of skipped add events.
func replay(ctx context.Context, m *appsvcs.Manager, sc *Scenario, skipInvalid bool) (int, error) {
	skipped := 0
	for i, ev := range sc.Events {
		switch ev.Op {
		case opAdd:
			err := m.HandleItemAdded(ctx, ev.ItemType, ev.ItemUUID, ev.Name, *ev.FillFactor)
			if err == nil {
				continue
			}
			if skipInvalid && errors.Is(err, domain.ErrInvalidFillFactor) {
				skipped++
				continue
			}
			return skipped, fmt.Errorf("event %d: %w", i+1, err)
		case opRemove:
			m.HandleItemRemoved(ctx, ev.ItemUUID)
		case opForget:
			m.ForgetItem(ctx, ev.ItemType)
		}
	}
	return skipped, nil
}

func runReport(ctx context.Context, out io.Writer, log logger.Logger, sc *Scenario, threshold float64, opts *reportOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold %v outside [0, 1]", threshold)
	}

	m := appsvcs.NewManager(log, nil)
	skipped, err := replay(ctx, m, sc, opts.skipInvalid)
	if err != nil {
		return err
	}

	restock := m.Items(threshold)
	fmt.Fprint(out, renderTable(restock, sc.Labels))
	fmt.Fprintf(out, "\n%d item type(s) at or below %s", len(restock), strconv.FormatFloat(threshold, 'f', -1, 64))
	if skipped > 0 {
		fmt.Fprintf(out, ", %d invalid event(s) skipped", skipped)
	}
	fmt.Fprintln(out)

	if opts.dump {
		fmt.Fprintln(out)
		fmt.Fprintln(out, m.String())
	}
	return nil
}

// renderTable lays out the restock entries in aligned columns. The label
// column only appears when the scenario names item types.
func renderTable(rows []models.TypeFill, labels map[int64]string) string {
	header := []string{"ITEM TYPE", "AVG FILL"}
	if len(labels) > 0 {
		header = []string{"ITEM TYPE", "LABEL", "AVG FILL"}
	}

	cells := [][]string{header}
	for _, r := range rows {
		fill := strconv.FormatFloat(r.FillFactor, 'f', 2, 64)
		row := []string{strconv.FormatInt(r.ItemType, 10), fill}
		if len(labels) > 0 {
			row = []string{strconv.FormatInt(r.ItemType, 10), labels[r.ItemType], fill}
		}
		cells = append(cells, row)
	}

	widths := make([]int, len(header))
	for _, row := range cells {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range cells {
		for i, c := range row {
			if i == len(row)-1 {
				b.WriteString(c)
				break
			}
			b.WriteString(runewidth.FillRight(c, widths[i]+2))
		}
		b.WriteString("\n")
	}
	return b.String()
}
