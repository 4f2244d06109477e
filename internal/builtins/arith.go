package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// registerArith installs +, -, *, /, mod, and number? over Int
// values: "-" negates with one argument and errors with zero; "/"
// errors "no reciprocal" with one argument and on a zero divisor; mod
// is the two-argument Euclidean remainder.
func registerArith(frame *env.Frame) {
	def1(frame, "+", builtinAdd)
	def1(frame, "-", builtinSub)
	def1(frame, "*", builtinMul)
	def1(frame, "/", builtinDiv)
	def1(frame, "mod", builtinMod)
	def1(frame, "number?", pred1(func(v values.Value) bool { return v.Kind() == values.KindInt }))
}

func builtinAdd(_ interface{}, args []values.Value) (values.Value, error) {
	var sum int64
	for _, a := range args {
		n, err := wantInt(a)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return values.NewInt(sum), nil
}

func builtinSub(_ interface{}, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, merr.New(merr.CategoryArity, "-: expected at least 1 argument")
	}
	first, err := wantInt(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return values.NewInt(-first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := wantInt(a)
		if err != nil {
			return nil, err
		}
		acc -= n
	}
	return values.NewInt(acc), nil
}

func builtinMul(_ interface{}, args []values.Value) (values.Value, error) {
	acc := int64(1)
	for _, a := range args {
		n, err := wantInt(a)
		if err != nil {
			return nil, err
		}
		acc *= n
	}
	return values.NewInt(acc), nil
}

func builtinDiv(_ interface{}, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, merr.New(merr.CategoryArity, "/: expected at least 1 argument")
	}
	if len(args) == 1 {
		return nil, merr.New(merr.CategoryArithmetic, "no reciprocal")
	}
	first, err := wantInt(args[0])
	if err != nil {
		return nil, err
	}
	acc := first
	for _, a := range args[1:] {
		n, err := wantInt(a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, merr.New(merr.CategoryArithmetic, "division by zero")
		}
		acc /= n
	}
	return values.NewInt(acc), nil
}

func builtinMod(_ interface{}, args []values.Value) (values.Value, error) {
	if err := arity("mod", args, 2); err != nil {
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
	if b == 0 {
		return nil, merr.New(merr.CategoryArithmetic, "division by zero")
	}
	return values.NewInt(((a % b) + b) % b), nil
}
