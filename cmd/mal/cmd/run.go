package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/host"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/values"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file] [args...]",
	Short: "Run a Mal file or expression",
	Long: `Execute a Mal program from a file or inline expression.

Examples:
  # Run a script file
  mal run script.mal

  # Evaluate an inline expression
  mal run -e "(+ 1 2 3)"

  # Run with the bootstrap prelude skipped
  mal run --no-bootstrap script.mal`,
	Args: cobra.ArbitraryArgs,
	RunE: runScript,
}

var noBootstrap bool

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace each top-level form before evaluating it")
	runCmd.Flags().BoolVar(&noBootstrap, "no-bootstrap", false, "skip loading bootstrap.mal")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string
	var scriptArgs []string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
		scriptArgs = args
	} else if len(args) >= 1 {
		filename = args[0]
		content, err := host.Slurp(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
		scriptArgs = args[1:]
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	argv := append([]string{filename}, scriptArgs...)
	global, ev := newGlobalFrame(argv)

	if !noBootstrap {
		ok, err := loadBootstrap(ev, global, "bootstrap.mal")
		if err != nil {
			return fmt.Errorf("failed to load bootstrap.mal: %w", err)
		}
		if !ok {
			return nil
		}
	}

	forms, err := readAllForms(input)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var last values.Value = values.Nil
	for _, form := range forms {
		if trace {
			fmt.Fprintf(os.Stderr, "[trace] %s\n", printer.PrStr(form))
		}
		v, err := ev.Eval(form, global)
		if err != nil {
			return fmt.Errorf("%s", formatErr(err))
		}
		last = v
	}

	if evalExpr != "" && last.Kind() != values.KindNil {
		fmt.Println(printer.PrStr(last))
	}
	return nil
}

// readAllForms reads every top-level form out of input, the way a
// script file is consumed form-by-form rather than as a single read.
func readAllForms(input string) ([]values.Value, error) {
	r := reader.NewReader(input, nil)
	var forms []values.Value
	for !r.Drained() {
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}
