package cli

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kr/text"
	"github.com/spf13/pflag"

	"github.com/decwindow/decimal"
	"github.com/decwindow/decimal/decmath"
)

// config holds the values of the persistent flags.
type config struct {
	window        int
	epsilon       string
	maxIterations int
	verbose       bool
}

var flagUsage = map[string]string{
	"window": wrapText(`
Maximum number of significant digits kept by operands and results. Digits
beyond the window are rounded half-up.`),
	"epsilon": wrapText(`
Convergence threshold of the elementary functions. A series stops once its
last term is below the threshold. Defaults to 0.0000000001.`),
	"max-iterations": wrapText(`
Upper bound on the number of steps of any iteration. Functions that do not
converge within the bound fail.`),
	"verbose": wrapText(`
Log every evaluation with a human-readable development logger.`),
}

const wrapWidth = 79

func wrapText(s string) string {
	return text.Wrap(s, wrapWidth)
}

func usage(name string) string {
	s := flagUsage[name]
	if s[0] != '\n' {
		s = "\n" + s
	}
	if s[len(s)-1] != '\n' {
		s = s + "\n"
	}
	return text.Indent(s, "        ")
}

func registerFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVar(&cfg.window, "window", int(decimal.DefaultWindow), usage("window"))
	fs.StringVar(&cfg.epsilon, "epsilon", "", usage("epsilon"))
	fs.IntVar(&cfg.maxIterations, "max-iterations", decmath.DefaultMaxIterations, usage("max-iterations"))
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, usage("verbose"))
}

// parseOperands separates the operands of an operation from the flags
// around them and applies the flags. A token that parses as a decimal is an
// operand even when it starts with a minus sign, unless it is the value of
// the preceding flag.
func (e *env) parseOperands(name string, args []string) (operands []string, help bool, err error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	registerFlags(fs, &e.cfg)
	fs.BoolVarP(&help, "help", "h", false, "help for "+name)

	var flags []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case !strings.HasPrefix(a, "-") || isNumber(a):
			operands = append(operands, a)
		default:
			flags = append(flags, a)
			if takesValue(fs, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if err := fs.Parse(flags); err != nil {
		return nil, false, errors.Wrap(err, name)
	}
	return operands, help, nil
}

func isNumber(s string) bool {
	_, err := decimal.Parse(s)
	return err == nil
}

// takesValue reports whether the flag token a expects its value in the
// next token.
func takesValue(fs *pflag.FlagSet, a string) bool {
	name := strings.TrimLeft(a, "-")
	if strings.Contains(name, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		f = fs.Lookup(name)
	case len(name) == 1:
		f = fs.ShorthandLookup(name)
	}
	return f != nil && f.NoOptDefVal == ""
}

// parse converts an operand in the configured window.
func (cfg *config) parse(s string) (decimal.Decimal, error) {
	d, err := decimal.Window(cfg.window).Parse(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "operand %q", s)
	}
	return d, nil
}

// context returns the iteration context selected by the flags.
func (cfg *config) context() (decmath.Context, error) {
	c := decmath.Context{MaxIterations: cfg.maxIterations}
	if cfg.epsilon == "" {
		return c, nil
	}
	eps, err := cfg.parse(cfg.epsilon)
	if err != nil {
		return decmath.Context{}, errors.Wrap(err, "--epsilon")
	}
	c, err = decmath.NewContext(eps)
	if err != nil {
		return decmath.Context{}, errors.Wrap(err, "--epsilon")
	}
	c.MaxIterations = cfg.maxIterations
	return c, nil
}
