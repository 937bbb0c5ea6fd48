package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
	"github.com/fin-tools/pocket-ledger/pkg/runtime/terminal/export"
	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
)

type PreviewCmd struct {
	reportFlags
	agg      *reportsvc.Aggregator
	reporter *export.Reporter
}

// NewPreviewCmd prints a report summary to the terminal without
// producing a file.
func NewPreviewCmd(agg *reportsvc.Aggregator, reporter *export.Reporter) *cobra.Command {
	pc := &PreviewCmd{agg: agg, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a report summary",
		RunE:  pc.run,
	}

	pc.register(cmd)
	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	reportType, err := reportsvc.ParseReportType(pc.reportType)
	if err != nil {
		return err
	}
	from, to, err := pc.window()
	if err != nil {
		return err
	}

	var data domain.ReportData
	switch reportType {
	case reportsvc.TypeMonthly:
		data, err = pc.agg.BuildMonthly(ctx, pc.userID, pc.month, pc.year)
	case reportsvc.TypeDateRange:
		if from == nil || to == nil {
			return fmt.Errorf("--from and --to are required for a daterange report")
		}
		data, err = pc.agg.BuildDateRange(ctx, pc.userID, *from, *to)
	case reportsvc.TypeBudget:
		data, err = pc.agg.BuildBudget(ctx, pc.userID, pc.month, pc.year)
	case reportsvc.TypeFullAccount:
		data, err = pc.agg.BuildFullAccount(ctx, pc.userID, from, to)
	default:
		return fmt.Errorf("unknown report type %q", pc.reportType)
	}
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return pc.reporter.Handle(data)
}
