package builtins

import (
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

func wantInt(v values.Value) (int64, error) {
	i, ok := v.(values.Int)
	if !ok {
		return 0, merr.New(merr.CategoryType, "expected an integer, got %s", values.TypeName(v))
	}
	return i.Value, nil
}

func wantStrLike(v values.Value) (string, bool) {
	s, ok := v.(values.Str)
	if !ok {
		return "", false
	}
	return s.Text(), true
}

func wantSeq(v values.Value) (values.List, bool) {
	return values.AsList(v)
}

func arity(name string, args []values.Value, n int) error {
	if len(args) != n {
		return merr.New(merr.CategoryArity, "%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func arityRange(name string, args []values.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return merr.New(merr.CategoryArity, "%s: wrong number of arguments (got %d)", name, len(args))
	}
	return nil
}
