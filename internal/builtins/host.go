package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/host"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerHost installs the two filesystem-facing primitives: slurp
// and load-library. load-file itself is not a builtin — the CLI
// (cmd/mal/cmd/root.go) defines it in terms of slurp, read-string,
// and eval before loading bootstrap.mal.
func registerHost(global *env.Frame, ev *eval.Evaluator) {
	def1(global, "slurp", func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("slurp", args, 1); err != nil {
			return nil, err
		}
		path, ok := wantStrLike(args[0])
		if !ok {
			return nil, merr.New(merr.CategoryType, "slurp: expected a string path")
		}
		contents, err := host.Slurp(path)
		if err != nil {
			return nil, merr.New(merr.CategoryRuntime, "slurp: %s", err.Error())
		}
		return values.NewString(contents), nil
	})

	def1(global, "load-library", func(evArg interface{}, args []values.Value) (values.Value, error) {
		if err := arity("load-library", args, 1); err != nil {
			return nil, err
		}
		path, ok := wantStrLike(args[0])
		if !ok {
			return nil, merr.New(merr.CategoryType, "load-library: expected a string path")
		}
		e, ok := evArg.(*eval.Evaluator)
		if !ok {
			e = ev
		}
		if err := host.LoadLibrary(path, e, global); err != nil {
			return nil, merr.New(merr.CategoryRuntime, "%s", err.Error())
		}
		return values.Nil, nil
	})
}
