package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/values"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.9.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mal",
	Short: "Mal interpreter",
	Long: `mal is a Go implementation of a small homoiconic Lisp dialect:
a tail-call-optimized evaluator over a persistent value model, with
quasiquotation, macros, and a lazily-collapsing hash-map overlay.

With no subcommand, mal loads bootstrap.mal and enters a REPL.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

// newGlobalFrame builds a fresh global environment with every core
// builtin registered, populates *ARGV*, and returns it together with
// the Evaluator builtins re-enter for eval/apply.
func newGlobalFrame(argv []string) (*env.Frame, *eval.Evaluator) {
	global := env.New()
	ev := eval.New()
	builtins.Register(global, ev)

	argvVals := make([]values.Value, len(argv))
	for i, a := range argv {
		argvVals[i] = values.NewString(a)
	}
	global.Set("*ARGV*", values.NewList(argvVals...))

	return global, ev
}

// loadBootstrap defines load-file in terms of slurp/read-string/eval
// and runs (load-file "bootstrap.mal"). It reports whether the load
// returned a truthy value.
func loadBootstrap(ev *eval.Evaluator, global *env.Frame, path string) (bool, error) {
	const loadFileDef = `(def load-file (fn (f) (eval (read-string (str "(do " (slurp f) "\n)")))))`
	v, err := reader.ReadStr(loadFileDef, nil)
	if err != nil {
		return false, err
	}
	if _, err := ev.Eval(v, global); err != nil {
		return false, err
	}

	call, err := reader.ReadStr(fmt.Sprintf("(load-file %q)", path), nil)
	if err != nil {
		return false, err
	}
	result, err := ev.Eval(call, global)
	if err != nil {
		return false, err
	}
	return values.Truthy(result), nil
}

func runRepl(_ *cobra.Command, args []string) error {
	argv := append([]string{os.Args[0]}, args...)
	global, ev := newGlobalFrame(argv)

	ok, err := loadBootstrap(ev, global, "bootstrap.mal")
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		os.Exit(0)
	}
	if !ok {
		os.Exit(0)
	}

	fmt.Println("Mal Repl v.0.9")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		v, err := reader.ReadStr(line, nil)
		if err != nil {
			fmt.Println(formatErr(err))
			continue
		}
		result, err := ev.Eval(v, global)
		if err != nil {
			fmt.Println(formatErr(err))
			continue
		}
		if result.Kind() != values.KindNil {
			fmt.Println(printer.PrStr(result))
		}
	}
	return nil
}

// formatErr renders an evaluator error the way the REPL driver is
// required to: "Mal Error: <msg>".
func formatErr(err error) string {
	if me, ok := merr.As(err); ok {
		return me.Format()
	}
	return "Mal Error: " + err.Error()
}
