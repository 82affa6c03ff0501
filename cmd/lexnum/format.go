package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TsubasaBE/go-lexnum/internal/log"
	"github.com/TsubasaBE/go-lexnum/numfmt"
	"github.com/TsubasaBE/go-lexnum/parse"
)

func newFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format value...",
		Short: "Print each value with the fewest fractional digits that round-trip it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			digits := conf.FractionalDigits()
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, ok := parse.Parse[float64](arg).Get()
				if !ok {
					log.Logger().Warn("not a number", zap.String("input", arg))
					return errors.NotValidf("value %q", arg)
				}
				if _, err := fmt.Fprintln(out, numfmt.Format(v, digits)); err != nil {
					return errors.Trace(err)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("min-digits", 0, "minimum number of fractional digits")
	cmd.Flags().String("pattern", "", "number format giving the minimum fractional digits, e.g. 0.00")
	return cmd
}
