package eval

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/merr"
	"github.com/cwbudde/go-mal/internal/values"
)

// evalQuasiquote implements (quasiquote x): rewrite x per the qq rule
// below, resolving `concat` and `cons` to whatever they are bound to
// in frame right now — re-binding them afterward must not change
// previously-rewritten code, so the resolved values are embedded
// directly into the rewrite rather than left as symbols to re-look-up
// at evaluation time.
func (e *Evaluator) evalQuasiquote(l values.List, frame *env.Frame) (values.Value, error) {
	args := listArgs(l)
	if len(args) != 1 {
		return nil, merr.New(merr.CategoryArity, "quasiquote: expected 1 argument, got %d", len(args))
	}
	consFn, err := frame.Lookup("cons")
	if err != nil {
		return nil, merr.New(merr.CategoryLookup, "quasiquote: %s", err.Error())
	}
	concatFn, err := frame.Lookup("concat")
	if err != nil {
		return nil, merr.New(merr.CategoryLookup, "quasiquote: %s", err.Error())
	}
	return qq(args[0], consFn, concatFn), nil
}

// isFlist reports whether x is a non-empty list — vectors are
// deliberately excluded, so a vector value is never rewritten inside;
// it is quoted as a literal whole.
func isFlist(x values.Value) bool {
	return x.Kind() == values.KindList && !x.(values.List).Empty()
}

func qq(x values.Value, consFn, concatFn values.Value) values.Value {
	if !isFlist(x) {
		return values.NewList(values.NewSymbol("quote"), x)
	}
	l := x.(values.List)
	head := l.First()

	if values.IsSymbolNamed(head, "unquote") {
		rest, _ := values.AsList(l.Rest())
		if rest.GetSize() >= 1 {
			return rest.First()
		}
		return values.Nil
	}

	if headList, ok := values.AsList(head); ok && isFlist(head) && values.IsSymbolNamed(headList.First(), "splice-unquote") {
		zRest, _ := values.AsList(headList.Rest())
		z := values.Nil
		if zRest.GetSize() >= 1 {
			z = zRest.First()
		}
		restRewritten := qq(l.Rest(), consFn, concatFn)
		return values.NewList(concatFn, z, restRewritten)
	}

	headRewritten := qq(head, consFn, concatFn)
	restRewritten := qq(l.Rest(), consFn, concatFn)
	return values.NewList(consFn, headRewritten, restRewritten)
}
