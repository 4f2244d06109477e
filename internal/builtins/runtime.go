package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerRuntime installs the evaluator-facing builtins: =,
// list-equal, the Int comparisons, eval, throw, apply.
func registerRuntime(global *env.Frame, ev *eval.Evaluator) {
	def1(global, "=", func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("=", args, 2); err != nil {
			return nil, err
		}
		return values.Bool(values.Equal(args[0], args[1])), nil
	})
	def1(global, "list-equal", func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("list-equal", args, 2); err != nil {
			return nil, err
		}
		return values.Bool(values.ListEqual(args[0], args[1])), nil
	})
	def1(global, "<", intCompare(func(a, b int64) bool { return a < b }))
	def1(global, "<=", intCompare(func(a, b int64) bool { return a <= b }))
	def1(global, ">", intCompare(func(a, b int64) bool { return a > b }))
	def1(global, ">=", intCompare(func(a, b int64) bool { return a >= b }))

	def1(global, "eval", func(evArg interface{}, args []values.Value) (values.Value, error) {
		if err := arity("eval", args, 1); err != nil {
			return nil, err
		}
		e, ok := evArg.(*eval.Evaluator)
		if !ok {
			e = ev
		}
		return e.Eval(args[0], global)
	})
	def1(global, "throw", func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("throw", args, 1); err != nil {
			return nil, err
		}
		return nil, merr.Throw(args[0])
	})
	def1(global, "apply", func(evArg interface{}, args []values.Value) (values.Value, error) {
		if len(args) < 1 {
			return nil, merr.New(merr.CategoryArity, "apply: expected at least 1 argument")
		}
		fn := args[0]
		var callArgs []values.Value
		if len(args) > 1 {
			callArgs = append(callArgs, args[1:len(args)-1]...)
			last := args[len(args)-1]
			l, ok := wantSeq(last)
			if !ok {
				return nil, merr.New(merr.CategoryType, "apply: last argument must be a sequence")
			}
			callArgs = append(callArgs, l.Slice()...)
		}
		e, ok := evArg.(*eval.Evaluator)
		if !ok {
			e = ev
		}
		return e.Apply(fn, callArgs, global)
	})
}

func intCompare(cmp func(a, b int64) bool) values.BuiltinFunc {
	return func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("comparison", args, 2); err != nil {
			return nil, err
		}
		a, err := wantInt(args[0])
		if err != nil {
			return nil, err
		}
		b, err := wantInt(args[1])
		if err != nil {
			return nil, err
		}
		return values.Bool(cmp(a, b)), nil
	}
}
