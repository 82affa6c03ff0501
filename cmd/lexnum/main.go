package main

import (
	"bufio"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-lexnum/internal/config"
	"github.com/TsubasaBE/go-lexnum/internal/log"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lexnum",
		Short:         "Parse lenient numeric text and format floating-point values.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			log.SetLogger(cmd.Flags(), debug)
		},
	}
	root.PersistentFlags().Bool("debug", false, "use debug log mode")
	root.PersistentFlags().StringP("config", "c", "", "configuration file path")
	log.AddFlags(root.PersistentFlags())
	root.AddCommand(newParseCommand(), newFormatCommand(), newVersionCommand())
	return root
}

// loadConfig reads the configuration named by --config, merged with the
// environment and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	conf, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, errors.Annotate(err, "load config")
	}
	return conf, nil
}

// readInputs returns args, or one input per line of stdin when args is
// empty.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Annotate(err, "read stdin")
	}
	return inputs, nil
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
