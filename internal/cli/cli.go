// Package cli implements the deccalc command tree.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decwindow/decimal"
)

// env is shared by all commands of one tree.
type env struct {
	cfg config
	out io.Writer
	log *zap.Logger
}

// New returns the root command writing results to out.
func New(out io.Writer) *cobra.Command {
	return newRootCmd(&env{out: out})
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "deccalc [command]",
		Short: "windowed decimal calculator",
		Long: wrapText(`
Evaluates decimal arithmetic and elementary functions with a fixed number
of significant digits. Results outside the finite domain are printed as
their symbol, for example "∞~" for 1 / 0.`),
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}
	registerFlags(root.PersistentFlags(), &e.cfg)
	for _, op := range operations {
		root.AddCommand(newOpCmd(e, op))
	}
	root.AddCommand(newCheckCmd(e))
	return root
}

func (e *env) initLogger() error {
	if e.log != nil {
		return nil
	}
	var err error
	if e.cfg.verbose {
		e.log, err = zap.NewDevelopment()
	} else {
		e.log, err = zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
	}
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	return nil
}

func newOpCmd(e *env, op operation) *cobra.Command {
	use := op.name
	if len(op.args) > 0 {
		use += " <" + strings.Join(op.args, "> <") + ">"
	}
	// Operands such as -1 would be taken for shorthand flags, so the
	// command splits its own arguments.
	return &cobra.Command{
		Use:                use,
		Short:              op.short,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, help, err := e.parseOperands(op.name, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			if len(operands) != len(op.args) {
				return errors.Newf("%s accepts %d arg(s), received %d", op.name, len(op.args), len(operands))
			}
			if err := e.initLogger(); err != nil {
				return err
			}
			res, err := e.run(op, operands)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(e.out, res)
			return err
		},
	}
}

// run evaluates op on textual operands. Special results are rendered as
// their symbol; other failures are returned.
func (e *env) run(op operation, args []string) (string, error) {
	c, err := e.cfg.context()
	if err != nil {
		return "", err
	}
	x := make([]decimal.Decimal, len(args))
	for i, a := range args {
		if x[i], err = e.cfg.parse(a); err != nil {
			return "", err
		}
	}
	e.log.Debug("evaluating",
		zap.String("op", op.name),
		zap.Strings("args", args),
		zap.Int("window", e.cfg.window),
	)
	res, err := op.eval(c, e.cfg.window, x)
	if s, ok := decimal.AsSpecial(err); ok {
		e.log.Info("special result", zap.String("op", op.name), zap.String("value", s.Name()), zap.Error(err))
		return s.Symbol(), nil
	}
	if err != nil {
		return "", errors.Wrap(err, op.name)
	}
	return res, nil
}
