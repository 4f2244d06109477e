package builtins

import (
	"runtime"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/intern"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// builtinPool backs the `intern` builtin. It is separate from any
// pool the reader was constructed with — the operation only needs to
// return an interned version of its argument, not to share the
// reader's table.
var builtinPool = intern.New()

// registerValueOps installs the value-shaping builtins: symbol/
// keyword construction, the symbol?/keyword?/string? type predicates,
// atom/deref/reset!, meta/with-meta, intern, ref-count,
// get-system-info.
func registerValueOps(frame *env.Frame) {
	def1(frame, "symbol", stringMaker(values.NewSymbol))
	def1(frame, "keyword", stringMaker(values.NewKeyword))
	def1(frame, "symbol?", pred1(func(v values.Value) bool { return v.Kind() == values.KindSymbol }))
	def1(frame, "keyword?", pred1(func(v values.Value) bool { return v.Kind() == values.KindKeyword }))
	def1(frame, "string?", pred1(func(v values.Value) bool { return v.Kind() == values.KindString }))
	def1(frame, "atom", builtinAtom)
	def1(frame, "atom?", pred1(func(v values.Value) bool { return v.Kind() == values.KindAtom }))
	def1(frame, "deref", builtinDeref)
	def1(frame, "reset!", builtinReset)
	def1(frame, "meta", builtinMeta)
	def1(frame, "with-meta", builtinWithMeta)
	def1(frame, "intern", builtinIntern)
	def1(frame, "ref-count", builtinRefCount)
	def1(frame, "get-system-info", builtinSystemInfo)
}

func stringMaker(ctor func(string) values.Value) values.BuiltinFunc {
	return func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("symbol/keyword", args, 1); err != nil {
			return nil, err
		}
		s, ok := wantStrLike(args[0])
		if !ok {
			return nil, merr.New(merr.CategoryType, "expected a string-like argument")
		}
		return ctor(s), nil
	}
}

func builtinAtom(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arityRange("atom", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return values.NewAtom(values.Nil), nil
	}
	return values.NewAtom(args[0]), nil
}

func builtinDeref(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("deref", args, 1); err != nil {
		return nil, err
	}
	a, ok := args[0].(*values.Atom)
	if !ok {
		return nil, merr.New(merr.CategoryType, "deref: expected an atom")
	}
	return a.Deref(), nil
}

func builtinReset(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("reset!", args, 2); err != nil {
		return nil, err
	}
	a, ok := args[0].(*values.Atom)
	if !ok {
		return nil, merr.New(merr.CategoryType, "reset!: expected an atom")
	}
	return a.Reset(args[1]), nil
}

func builtinMeta(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("meta", args, 1); err != nil {
		return nil, err
	}
	return args[0].Meta(), nil
}

func builtinWithMeta(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("with-meta", args, 2); err != nil {
		return nil, err
	}
	return args[0].WithMeta(args[1]), nil
}

func builtinIntern(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("intern", args, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(values.Str)
	if !ok {
		return nil, merr.New(merr.CategoryType, "intern: expected a string-like argument")
	}
	canon := builtinPool.Intern(s.Text())
	switch s.Kind() {
	case values.KindSymbol:
		return values.NewSymbol(canon), nil
	case values.KindKeyword:
		return values.NewKeyword(canon), nil
	default:
		return values.NewString(canon), nil
	}
}

func builtinRefCount(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("ref-count", args, 1); err != nil {
		return nil, err
	}
	// Reference counting is an implementation detail the host runtime
	// (Go's garbage collector) doesn't expose; this always reports 1,
	// whatever the argument.
	return values.NewInt(1), nil
}

func builtinSystemInfo(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("get-system-info", args, 0); err != nil {
		return nil, err
	}
	return values.NewMap(
		values.NewKeyword("os"), values.NewString(runtime.GOOS),
		values.NewKeyword("arch"), values.NewString(runtime.GOARCH),
	), nil
}
