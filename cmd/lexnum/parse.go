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

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse the number at the start of each input.",
		Long: "Parse the number at the start of each argument, or of each stdin line\n" +
			"when no arguments are given. Each input is printed quoted, followed by\n" +
			"a tab and the value or \"invalid\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return errors.Trace(err)
			}
			kind := conf.ParseKind()
			if asInt, _ := cmd.Flags().GetBool("int"); asInt {
				kind = parse.Integer
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return errors.Trace(err)
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, input := range inputs {
				text, ok := parseOne(input, kind, conf.FractionalDigits())
				if !ok {
					failed++
				}
				if _, err := fmt.Fprintf(out, "%q\t%s\n", input, text); err != nil {
					return errors.Trace(err)
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d inputs could not be parsed", failed, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().Bool("int", false, "parse as integer instead of floating point")
	cmd.Flags().Int("min-digits", 0, "minimum fractional digits in printed floats")
	cmd.Flags().String("pattern", "", "number format giving the minimum fractional digits, e.g. 0.00")
	return cmd
}

// parseOne parses input and renders the value, or "invalid".
func parseOne(input string, kind parse.Kind, minDigits int) (string, bool) {
	tok, ok := parse.Scan(input, kind)
	if !ok {
		log.Logger().Debug("not a number", zap.String("input", input), zap.Stringer("kind", kind))
		return "invalid", false
	}
	log.Logger().Debug("scanned token",
		zap.String("input", input),
		zap.Stringer("kind", kind),
		zap.String("literal", tok.Literal()),
		zap.Int("end", tok.End))

	if kind == parse.Float {
		return numfmt.Format(tok.Float(64), minDigits), true
	}
	v, ok := tok.Int(64)
	if !ok {
		log.Logger().Debug("integer out of range", zap.String("input", input))
		return "invalid", false
	}
	return string(numfmt.AppendInt(nil, v)), true
}
