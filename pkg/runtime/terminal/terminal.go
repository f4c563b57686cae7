package terminal

import (
	"io"
	"os"

	"github.com/it-tools/asset-atlas/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assetatlas",
		Short: "Asset valuation and license optimization tool",
	}

	cmd.AddCommand(commands.NewFleetsCmd(out))
	cmd.AddCommand(commands.NewDepreciationCmd(out))
	cmd.AddCommand(commands.NewTCOCmd(out))
	cmd.AddCommand(commands.NewLicensesCmd(out))

	return cmd
}
