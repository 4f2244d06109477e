// Package eval implements the tail-call-optimized tree-walking
// evaluator: special forms, function invocation, macro expansion,
// quasiquotation, and the TCO trampoline loop, guarded by a bounded
// recursion counter.
//
// The file layout splits one file per syntactic concern (special
// forms, function application, quasiquote rewriting), generalized
// from a visitor dispatched per AST node type to a switch over
// special-form head symbols inside a single trampoline loop: TCO
// requires one loop frame, so per-node-type recursive-descent
// dispatch is not used for the forms that must stay in tail
// position.
package eval

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// MaxRecursionDepth bounds non-tail recursive Eval nesting; exceeding
// it fails with "Recursion limit reached".
const MaxRecursionDepth = 500

// Evaluator holds the interpreter's one piece of call-scoped mutable
// state: the recursion depth counter. The global frame lives outside
// the Evaluator (in the caller, e.g. cmd/mal or internal/builtins)
// since builtins only ever need a way to re-enter Eval/Apply, not the
// frame itself.
type Evaluator struct {
	depth int
}

// New creates an Evaluator with a fresh recursion counter.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval is the evaluator's single entry point: evaluate expr against
// env, returning a value or a *merr.Error.
func (e *Evaluator) Eval(expr values.Value, frame *env.Frame) (values.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > MaxRecursionDepth {
		return nil, merr.New(merr.CategoryRuntime, "Recursion limit reached")
	}

	for {
		l, isList := values.AsList(expr)
		if !isList || expr.Kind() != values.KindList || l.Empty() {
			return e.evalAst(expr, frame)
		}

		head := l.First()
		if sym, ok := head.(values.Str); ok && sym.Kind() == values.KindSymbol {
			switch sym.Text() {
			case "def":
				return e.evalDef(l, frame)
			case "let*":
				var err error
				expr, frame, err = e.evalLetStar(l, frame)
				if err != nil {
					return nil, err
				}
				continue
			case "do":
				var err error
				expr, err = e.evalDo(l, frame)
				if err != nil {
					return nil, err
				}
				continue
			case "if":
				var err error
				expr, err = e.evalIf(l, frame)
				if err != nil {
					return nil, err
				}
				continue
			case "fn":
				return e.evalFn(l, frame, values.FuncKindFunction)
			case "macro":
				return e.evalFn(l, frame, values.FuncKindMacro)
			case "quote":
				return e.evalQuote(l)
			case "quasiquote":
				rewritten, err := e.evalQuasiquote(l, frame)
				if err != nil {
					return nil, err
				}
				expr = rewritten
				continue
			case "macroexpand":
				return e.evalMacroexpand(l, frame)
			case "try*":
				var err error
				expr, frame, err = e.evalTryStar(l, frame)
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		// Ordinary application: evaluate the head first so macro calls
		// can be recognized before their arguments are touched.
		fnVal, err := e.Eval(head, frame)
		if err != nil {
			return nil, err
		}

		if fn, ok := fnVal.(*values.Function); ok && fn.IsMacro() {
			expanded, err := e.invokeMacro(fn, l.Rest())
			if err != nil {
				return nil, err
			}
			expr = expanded
			continue
		}

		args, err := e.evalArgs(l.Rest(), frame)
		if err != nil {
			return nil, err
		}

		switch fn := fnVal.(type) {
		case *values.Builtin:
			return fn.Fn(e, args)
		case *values.Function:
			childFrame, err := bindParams(fn, args)
			if err != nil {
				return nil, err
			}
			expr = fn.Body
			frame = childFrame
			continue
		default:
			return nil, merr.New(merr.CategoryType, "not a function: %s", values.TypeName(fnVal))
		}
	}
}

// evalAst evaluates the non-special-form forms: Symbol resolves via
// the environment; List/Vector recursively evaluates each element
// into a new list/vector; anything else is returned as-is with its
// meta cleared.
func (e *Evaluator) evalAst(expr values.Value, frame *env.Frame) (values.Value, error) {
	switch t := expr.(type) {
	case values.Str:
		if t.Kind() == values.KindSymbol {
			v, err := frame.Lookup(t.Text())
			if err != nil {
				return nil, merr.New(merr.CategoryLookup, "%s", err.Error())
			}
			return v, nil
		}
		return expr.WithMeta(nil), nil
	case values.List:
		if t.Kind() != values.KindList && t.Kind() != values.KindVector {
			return expr.WithMeta(nil), nil
		}
		elems := t.Slice()
		out := make([]values.Value, len(elems))
		for i, el := range elems {
			v, err := e.Eval(el, frame)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		if t.Kind() == values.KindVector {
			return values.NewVector(out...), nil
		}
		return values.NewList(out...), nil
	default:
		return expr.WithMeta(nil), nil
	}
}

func (e *Evaluator) evalArgs(rest values.Value, frame *env.Frame) ([]values.Value, error) {
	l, _ := values.AsList(rest)
	elems := l.Slice()
	out := make([]values.Value, len(elems))
	for i, el := range elems {
		v, err := e.Eval(el, frame)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply invokes fn with already-evaluated args and runs it to
// completion, re-entering Eval for Function bodies as a non-tail
// call. Used by the `apply` builtin.
func (e *Evaluator) Apply(fn values.Value, args []values.Value, frame *env.Frame) (values.Value, error) {
	switch t := fn.(type) {
	case *values.Builtin:
		return t.Fn(e, args)
	case *values.Function:
		if t.IsMacro() {
			return nil, merr.New(merr.CategoryType, "macro is not applicable")
		}
		childFrame, err := bindParams(t, args)
		if err != nil {
			return nil, err
		}
		return e.Eval(t.Body, childFrame)
	default:
		return nil, merr.New(merr.CategoryType, "not a function: %s", values.TypeName(fn))
	}
}
