package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerSeq installs the sequence operations: list/vector
// constructors and predicates, count/first/rest/nth/cons/concat, with
// the string-as-sequence special cases each op names.
func registerSeq(frame *env.Frame) {
	def1(frame, "list", func(_ interface{}, args []values.Value) (values.Value, error) {
		return values.NewList(args...), nil
	})
	def1(frame, "vector", func(_ interface{}, args []values.Value) (values.Value, error) {
		return values.NewVector(args...), nil
	})
	def1(frame, "list?", pred1(func(v values.Value) bool { return v.Kind() == values.KindList }))
	def1(frame, "vector?", pred1(func(v values.Value) bool { return v.Kind() == values.KindVector }))
	def1(frame, "sequence?", pred1(func(v values.Value) bool {
		return v.Kind() == values.KindList || v.Kind() == values.KindVector
	}))
	def1(frame, "empty?", builtinEmpty)
	def1(frame, "count", builtinCount)
	def1(frame, "first", builtinFirst)
	def1(frame, "rest", builtinRest)
	def1(frame, "nth", builtinNth)
	def1(frame, "cons", builtinCons)
	def1(frame, "concat", builtinConcat)
}

func pred1(f func(values.Value) bool) values.BuiltinFunc {
	return func(_ interface{}, args []values.Value) (values.Value, error) {
		if err := arity("predicate", args, 1); err != nil {
			return nil, err
		}
		return values.Bool(f(args[0])), nil
	}
}

func builtinEmpty(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("empty?", args, 1); err != nil {
		return nil, err
	}
	v := args[0]
	if l, ok := wantSeq(v); ok {
		return values.Bool(l.Empty()), nil
	}
	if s, ok := wantStrLike(v); ok {
		return values.Bool(len(s) == 0), nil
	}
	return values.False, nil
}

func builtinCount(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("count", args, 1); err != nil {
		return nil, err
	}
	v := args[0]
	if l, ok := wantSeq(v); ok {
		return values.NewInt(int64(l.GetSize())), nil
	}
	if s, ok := wantStrLike(v); ok {
		return values.NewInt(int64(len(s))), nil
	}
	return values.Nil, nil
}

func builtinFirst(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("first", args, 1); err != nil {
		return nil, err
	}
	l, ok := wantSeq(args[0])
	if !ok || l.Empty() {
		return values.Nil, nil
	}
	return l.First(), nil
}

func builtinRest(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("rest", args, 1); err != nil {
		return nil, err
	}
	l, ok := wantSeq(args[0])
	if !ok {
		return values.Nil, nil
	}
	return l.Rest(), nil
}

func builtinNth(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("nth", args, 2); err != nil {
		return nil, err
	}
	idx, err := wantInt(args[1])
	if err != nil {
		return nil, err
	}
	if l, ok := wantSeq(args[0]); ok {
		v, ok := l.At(int(idx))
		if !ok {
			return values.Nil, nil
		}
		return v, nil
	}
	if s, ok := wantStrLike(args[0]); ok {
		if idx < 0 || int(idx) >= len(s) {
			return values.Nil, nil
		}
		return values.NewString(string(s[idx])), nil
	}
	return nil, merr.New(merr.CategoryType, "nth: expected a sequence or string")
}

func builtinCons(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("cons", args, 2); err != nil {
		return nil, err
	}
	l, ok := wantSeq(args[1])
	if !ok {
		return nil, merr.New(merr.CategoryType, "cons: second argument must be a list or nil")
	}
	return values.Cons(args[0], l), nil
}

func builtinConcat(_ interface{}, args []values.Value) (values.Value, error) {
	var lists []values.List
	for _, a := range args {
		l, ok := wantSeq(a)
		if !ok {
			return nil, merr.New(merr.CategoryType, "concat: all arguments must be sequences")
		}
		lists = append(lists, l)
	}
	if len(lists) == 0 {
		return values.EmptyList, nil
	}
	return lists[0].Concat(lists[1:]...), nil
}
