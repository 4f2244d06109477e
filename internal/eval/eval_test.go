package eval_test

import (
	"testing"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/values"
)

func newTestGlobal() (*env.Frame, *eval.Evaluator) {
	global := env.New()
	ev := eval.New()
	builtins.Register(global, ev)
	return global, ev
}

func evalSrc(t *testing.T, global *env.Frame, ev *eval.Evaluator, src string) values.Value {
	t.Helper()
	v, err := reader.ReadStr(src, nil)
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	result, err := ev.Eval(v, global)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return result
}

func TestArithmetic(t *testing.T) {
	global, ev := newTestGlobal()
	got := printer.PrStr(evalSrc(t, global, ev, "(+ 1 2 3)"))
	if got != "6" {
		t.Fatalf("(+ 1 2 3) = %s, want 6", got)
	}
}

func TestFactorialRecursion(t *testing.T) {
	global, ev := newTestGlobal()
	evalSrc(t, global, ev, `(def fact (fn (n) (if (<= n 1) 1 (* n (fact (- n 1))))))`)
	got := printer.PrStr(evalSrc(t, global, ev, "(fact 5)"))
	if got != "120" {
		t.Fatalf("(fact 5) = %s, want 120", got)
	}
}

func TestLetStarScoping(t *testing.T) {
	global, ev := newTestGlobal()
	got := printer.PrStr(evalSrc(t, global, ev, "(let* (x 2 y (* x 3)) (+ x y))"))
	if got != "8" {
		t.Fatalf("let* result = %s, want 8", got)
	}
	if _, err := global.Lookup("x"); err == nil {
		t.Fatalf("let* binding x leaked into the global frame")
	}
}

func TestQuasiquoteSplice(t *testing.T) {
	global, ev := newTestGlobal()
	evalSrc(t, global, ev, "(def lst (list 2 3))")
	got := printer.PrStr(evalSrc(t, global, ev, "`(1 ~@lst 4)"))
	if got != "(1 2 3 4)" {
		t.Fatalf("quasiquote splice = %s, want (1 2 3 4)", got)
	}
}

func TestHashMapAssocDissocContains(t *testing.T) {
	global, ev := newTestGlobal()
	evalSrc(t, global, ev, `(def m (assoc (hash-map) "a" 1 "b" 2))`)
	if got := printer.PrStr(evalSrc(t, global, ev, `(get m "a")`)); got != "1" {
		t.Fatalf(`(get m "a") = %s, want 1`, got)
	}
	if got := printer.PrStr(evalSrc(t, global, ev, `(contains? m "b")`)); got != "true" {
		t.Fatalf(`(contains? m "b") = %s, want true`, got)
	}
	evalSrc(t, global, ev, `(def m2 (dissoc m "b"))`)
	if got := printer.PrStr(evalSrc(t, global, ev, `(contains? m2 "b")`)); got != "false" {
		t.Fatalf(`(contains? m2 "b") after dissoc = %s, want false`, got)
	}
	if got := printer.PrStr(evalSrc(t, global, ev, `(contains? m "b")`)); got != "true" {
		t.Fatalf("dissoc mutated the original map: contains? m b = %s, want true", got)
	}
}

func TestTryStarCatchesThrow(t *testing.T) {
	global, ev := newTestGlobal()
	got := printer.PrStr(evalSrc(t, global, ev, `(try* (throw "boom") e (str "caught: " e))`))
	if got != `"caught: boom"` {
		t.Fatalf(`try*/throw = %s, want "caught: boom"`, got)
	}
}

func TestTailCallsDoNotGrowRecursionDepth(t *testing.T) {
	global, ev := newTestGlobal()
	evalSrc(t, global, ev, `(def count-down (fn (n) (if (= n 0) "done" (count-down (- n 1)))))`)
	got := printer.PrStr(evalSrc(t, global, ev, "(count-down 100000)"))
	if got != `"done"` {
		t.Fatalf(`tail-recursive count-down = %s, want "done"`, got)
	}
}

func TestEvalIsFixedPointForSelfEvaluatingForms(t *testing.T) {
	global, ev := newTestGlobal()
	for _, src := range []string{"1", `"hello"`, ":kw", "nil", "true", "false"} {
		v, err := reader.ReadStr(src, nil)
		if err != nil {
			t.Fatalf("read %q: %v", src, err)
		}
		result, err := ev.Eval(v, global)
		if err != nil {
			t.Fatalf("eval %q: %v", src, err)
		}
		if !values.Equal(v, result) {
			t.Fatalf("eval(%s) = %s, want a fixed point", src, printer.PrStr(result))
		}
	}
}

func TestMacroExpansion(t *testing.T) {
	global, ev := newTestGlobal()
	evalSrc(t, global, ev, `(def unless (macro (pred a b) (list 'if pred b a)))`)
	got := printer.PrStr(evalSrc(t, global, ev, "(unless false 7 8)"))
	if got != "7" {
		t.Fatalf("(unless false 7 8) = %s, want 7", got)
	}
}
