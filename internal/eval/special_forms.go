package eval

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

func listArgs(l values.List) []values.Value {
	return l.Rest().(values.List).Slice()
}

// evalDef implements (def name value): evaluate value in the current
// frame, bind it there, and return it.
func (e *Evaluator) evalDef(l values.List, frame *env.Frame) (values.Value, error) {
	args := listArgs(l)
	if len(args) != 2 {
		return nil, merr.New(merr.CategoryArity, "def: expected 2 arguments, got %d", len(args))
	}
	sym, ok := args[0].(values.Str)
	if !ok || sym.Kind() != values.KindSymbol {
		return nil, merr.New(merr.CategoryType, "def: expected a symbol name")
	}
	val, err := e.Eval(args[1], frame)
	if err != nil {
		return nil, err
	}
	frame.Set(sym.Text(), val)
	return val, nil
}

// evalLetStar implements (let* (k1 v1 k2 v2 …) body…): a child frame
// is created; each vi is evaluated in the growing child frame and
// bound to ki; the body forms are then sequenced like `do` and
// tail-returned for the main loop to continue on.
func (e *Evaluator) evalLetStar(l values.List, frame *env.Frame) (values.Value, *env.Frame, error) {
	args := listArgs(l)
	if len(args) < 1 {
		return nil, nil, merr.New(merr.CategoryArity, "let*: expected at least a binding list")
	}
	if args[0].Kind() != values.KindList {
		return nil, nil, merr.New(merr.CategoryType, "let*: bindings must be a list")
	}
	bindingList, _ := values.AsList(args[0])
	bindings := bindingList.Slice()
	if len(bindings)%2 != 0 {
		return nil, nil, merr.New(merr.CategoryArity, "let*: odd number of binding forms")
	}

	child := env.NewEnclosed(frame)
	for i := 0; i < len(bindings); i += 2 {
		keySym, ok := bindings[i].(values.Str)
		if !ok || keySym.Kind() != values.KindSymbol {
			return nil, nil, merr.New(merr.CategoryType, "let*: binding name must be a symbol")
		}
		v, err := e.Eval(bindings[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(keySym.Text(), v)
	}

	body := args[1:]
	expr, err := sequence(e, body, child)
	return expr, child, err
}

// sequence evaluates all but the last form for effect and returns the
// last form unevaluated for the caller to tail-continue on — the
// shared shape behind `do` and `let*`'s body. Empty returns Nil.
func sequence(e *Evaluator, forms []values.Value, frame *env.Frame) (values.Value, error) {
	if len(forms) == 0 {
		return values.Nil, nil
	}
	for _, f := range forms[:len(forms)-1] {
		if _, err := e.Eval(f, frame); err != nil {
			return nil, err
		}
	}
	return forms[len(forms)-1], nil
}

// evalDo implements (do e1 e2 … en): evaluate e1..e(n-1) for effect,
// tail-return en for the main loop to continue on. Empty do is Nil.
func (e *Evaluator) evalDo(l values.List, frame *env.Frame) (values.Value, error) {
	return sequence(e, listArgs(l), frame)
}

// evalIf implements (if c t e?): evaluate c; tail-return whichever
// branch applies, or Nil if the else branch is absent.
func (e *Evaluator) evalIf(l values.List, frame *env.Frame) (values.Value, error) {
	args := listArgs(l)
	if len(args) < 2 || len(args) > 3 {
		return nil, merr.New(merr.CategoryArity, "if: expected 2 or 3 arguments, got %d", len(args))
	}
	cond, err := e.Eval(args[0], frame)
	if err != nil {
		return nil, err
	}
	if values.Truthy(cond) {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return values.Nil, nil
}

// evalFn implements (fn params body) / (macro params body): construct
// a closure over the current frame with the given kind.
func (e *Evaluator) evalFn(l values.List, frame *env.Frame, kind values.FuncKind) (values.Value, error) {
	args := listArgs(l)
	if len(args) != 2 {
		return nil, merr.New(merr.CategoryArity, "fn: expected (params body)")
	}
	paramList, ok := values.AsList(args[0])
	if !ok {
		return nil, merr.New(merr.CategoryType, "fn: parameter list must be a list or vector")
	}
	params, rest, hasRest, err := parseParams(paramList.Slice())
	if err != nil {
		return nil, err
	}
	return &values.Function{
		Params:  params,
		Rest:    rest,
		HasRest: hasRest,
		Env:     frame,
		Body:    args[1],
		FnKind:  kind,
	}, nil
}

func parseParams(elems []values.Value) (params []string, rest string, hasRest bool, err error) {
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(values.Str)
		if !ok || sym.Kind() != values.KindSymbol {
			return nil, "", false, merr.New(merr.CategoryType, "fn: parameter names must be symbols")
		}
		if sym.Text() == "&" {
			if i+1 >= len(elems) {
				return nil, "", false, merr.New(merr.CategoryType, "fn: expected a name after '&'")
			}
			restSym, ok := elems[i+1].(values.Str)
			if !ok || restSym.Kind() != values.KindSymbol {
				return nil, "", false, merr.New(merr.CategoryType, "fn: rest parameter name must be a symbol")
			}
			rest = restSym.Text()
			hasRest = true
			break
		}
		params = append(params, sym.Text())
	}
	return params, rest, hasRest, nil
}

// evalQuote implements (quote x): return x unevaluated.
func (e *Evaluator) evalQuote(l values.List) (values.Value, error) {
	args := listArgs(l)
	if len(args) != 1 {
		return nil, merr.New(merr.CategoryArity, "quote: expected 1 argument, got %d", len(args))
	}
	return args[0], nil
}

// evalMacroexpand implements (macroexpand x): repeatedly replace x by
// the result of invoking its head macro on the unevaluated arguments,
// stopping (and returning the final x, unevaluated further) as soon
// as the head no longer evaluates to a Macro.
func (e *Evaluator) evalMacroexpand(l values.List, frame *env.Frame) (values.Value, error) {
	args := listArgs(l)
	if len(args) != 1 {
		return nil, merr.New(merr.CategoryArity, "macroexpand: expected 1 argument, got %d", len(args))
	}
	x := args[0]
	for {
		xl, ok := values.AsList(x)
		if !ok || x.Kind() != values.KindList || xl.Empty() {
			return x, nil
		}
		headVal, err := e.Eval(xl.First(), frame)
		if err != nil {
			return x, nil
		}
		fn, ok := headVal.(*values.Function)
		if !ok || !fn.IsMacro() {
			return x, nil
		}
		expanded, err := e.invokeMacro(fn, xl.Rest())
		if err != nil {
			return nil, err
		}
		x = expanded
	}
}

// invokeMacro binds the unevaluated argument forms to the macro's
// parameters and evaluates its body, producing the expansion.
func (e *Evaluator) invokeMacro(fn *values.Function, rawArgs values.Value) (values.Value, error) {
	argList, _ := values.AsList(rawArgs)
	childFrame, err := bindParams(fn, argList.Slice())
	if err != nil {
		return nil, err
	}
	return e.Eval(fn.Body, childFrame)
}

// evalTryStar implements (try* body sym handler): evaluate body; on
// failure bind sym in a new child frame to the error's payload value
// and tail-return the handler for the main loop to continue on.
func (e *Evaluator) evalTryStar(l values.List, frame *env.Frame) (values.Value, *env.Frame, error) {
	args := listArgs(l)
	if len(args) != 3 {
		return nil, nil, merr.New(merr.CategoryArity, "try*: expected (body sym handler)")
	}
	sym, ok := args[1].(values.Str)
	if !ok || sym.Kind() != values.KindSymbol {
		return nil, nil, merr.New(merr.CategoryType, "try*: catch name must be a symbol")
	}

	val, err := e.Eval(args[0], frame)
	if err == nil {
		// No failure: the body's value is already final, but we must
		// still return through the tail slot, so hand back a quoted
		// terminal form: wrap it in `(quote val)`.
		return values.NewList(values.NewSymbol("quote"), val), frame, nil
	}

	me, ok := merr.As(err)
	var payload values.Value
	if ok {
		payload = me.Payload
	} else {
		payload = values.NewString(err.Error())
	}

	child := env.NewEnclosed(frame)
	child.Set(sym.Text(), payload)
	return args[2], child, nil
}

func bindParams(fn *values.Function, args []values.Value) (*env.Frame, error) {
	outer, _ := fn.Env.(*env.Frame)
	frame := env.NewEnclosed(outer)

	if fn.HasRest {
		if len(args) < len(fn.Params) {
			return nil, merr.New(merr.CategoryArity, "wrong number of arguments: expected at least %d, got %d", len(fn.Params), len(args))
		}
		for i, name := range fn.Params {
			frame.Set(name, args[i])
		}
		frame.Set(fn.Rest, values.NewList(args[len(fn.Params):]...))
		return frame, nil
	}

	if len(args) != len(fn.Params) {
		return nil, merr.New(merr.CategoryArity, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}
	for i, name := range fn.Params {
		frame.Set(name, args[i])
	}
	return frame, nil
}
