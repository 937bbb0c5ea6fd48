package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fin-tools/pocket-ledger/pkg/runtime/terminal/commands"
	"github.com/fin-tools/pocket-ledger/pkg/runtime/terminal/export"
	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	generator  reportsvc.Generator
	aggregator *reportsvc.Aggregator
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Generator  reportsvc.Generator
	Aggregator *reportsvc.Aggregator
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		generator:  opts.Generator,
		aggregator: opts.Aggregator,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Personal finance reporting tool",
	}

	cmd.AddCommand(commands.NewExportCmd(cli.generator))
	cmd.AddCommand(commands.NewPreviewCmd(cli.aggregator, cli.reporter))

	return cmd
}
