package cli

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scenario is a reference evaluation with a known outcome. want is either
// a decimal text or the symbol of a special value. An operand written as
// "op args..." is the result of that operation.
type scenario struct {
	op   string
	args []string
	want string
}

var scenarios = []scenario{
	{"add", []string{"459.011", "0"}, "459.011"},
	{"quo", []string{"25", "4"}, "6.25"},
	{"rem", []string{"7", "4"}, "3"},
	{"rem", []string{"-7", "4"}, "1"},
	{"rem", []string{"7", "-4"}, "-1"},
	{"mul", []string{"12345.6789", "-9876.54321"}, "-121932631.112635269"},
	{"round-digits", []string{"27.5", "1"}, "30"},
	{"floor-digits", []string{"27.5", "1"}, "20"},
	{"ceil-digits", []string{"27.5", "1"}, "30"},
	{"round", []string{"exp 1", "0.0000000001"}, "2.7182818285"},
	{"round", []string{"sqrt 2", "0.0000000001"}, "1.4142135624"},
	{"quo", []string{"5", "0"}, "∞~"},
	{"quo", []string{"0", "0"}, "0 ∞"},
	{"ln", []string{"0"}, "-∞"},
	{"pow", []string{"0", "0"}, "0 ∞"},
	{"pow", []string{"2", "10"}, "1024"},
	{"factor", []string{"360"}, "2 2 2 3 3 5"},
	{"factorial", []string{"10"}, "3628800"},
}

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "replays the reference scenarios and reports pass or fail",
		Long: wrapText(`
Evaluates every reference scenario with the configured window and context,
prints one PASS or FAIL line per scenario and fails if any scenario fails.`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.initLogger(); err != nil {
				return err
			}
			return e.check(scenarios)
		},
	}
}

func (e *env) check(list []scenario) error {
	byName := make(map[string]operation, len(operations))
	for _, op := range operations {
		byName[op.name] = op
	}

	failed := 0
	for _, sc := range list {
		op, ok := byName[sc.op]
		if !ok {
			return errors.Newf("scenario refers to unknown operation %q", sc.op)
		}
		args, err := e.operands(byName, sc.args)
		var got string
		if err == nil {
			got, err = e.run(op, args)
		}
		if err != nil {
			got = "error: " + err.Error()
		}
		status := "PASS"
		if got != sc.want {
			status = "FAIL"
			failed++
			e.log.Warn("scenario failed",
				zap.String("op", sc.op),
				zap.Strings("args", sc.args),
				zap.String("got", got),
				zap.String("want", sc.want),
			)
		}
		if _, err := fmt.Fprintf(e.out, "%s %s %q = %s (want %s)\n", status, sc.op, sc.args, got, sc.want); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("%d of %d scenarios failed", failed, len(list))
	}
	return nil
}

// operands replaces nested operations among args by their results.
func (e *env) operands(byName map[string]operation, args []string) ([]string, error) {
	res := make([]string, len(args))
	for i, a := range args {
		f := strings.Fields(a)
		if len(f) == 0 {
			res[i] = a
			continue
		}
		op, ok := byName[f[0]]
		if !ok {
			res[i] = a
			continue
		}
		if len(f)-1 != len(op.args) {
			return nil, errors.Newf("%q: %s accepts %d arg(s)", a, op.name, len(op.args))
		}
		v, err := e.run(op, f[1:])
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
