package builtins_test

import (
	"testing"
	"unsafe"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/values"
)

func newGlobal() (*env.Frame, *eval.Evaluator) {
	global := env.New()
	ev := eval.New()
	builtins.Register(global, ev)
	return global, ev
}

func mustEval(t *testing.T, global *env.Frame, ev *eval.Evaluator, src string) values.Value {
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

func TestArithBuiltins(t *testing.T) {
	global, ev := newGlobal()
	cases := map[string]string{
		"(+ 1 2 3)": "6",
		"(- 10 3)":  "7",
		"(- 5)":     "-5",
		"(* 2 3 4)": "24",
		"(/ 12 4)":  "3",
		"(mod 7 3)": "1",
		"(mod -7 3)": "2",
	}
	for src, want := range cases {
		got := printer.PrStr(mustEval(t, global, ev, src))
		if got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestArithErrors(t *testing.T) {
	global, ev := newGlobal()
	for _, src := range []string{"(-)", "(/ 5)", "(/ 1 0)"} {
		v, rerr := reader.ReadStr(src, nil)
		if rerr != nil {
			t.Fatalf("read %q: %v", src, rerr)
		}
		if _, err := ev.Eval(v, global); err == nil {
			t.Errorf("%s: expected an error", src)
		}
	}
}

func TestSequenceBuiltins(t *testing.T) {
	global, ev := newGlobal()
	if got := printer.PrStr(mustEval(t, global, ev, "(cons 1 (list 2 3))")); got != "(1 2 3)" {
		t.Errorf("cons = %s, want (1 2 3)", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(concat (list 1 2) (list 3 4))")); got != "(1 2 3 4)" {
		t.Errorf("concat = %s, want (1 2 3 4)", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(nth (list 10 20 30) 1)")); got != "20" {
		t.Errorf("nth = %s, want 20", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(empty? (list))")); got != "true" {
		t.Errorf("empty? () = %s, want true", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(count [1 2 3])")); got != "3" {
		t.Errorf("count [1 2 3] = %s, want 3", got)
	}
}

func TestFirstRest(t *testing.T) {
	global, ev := newGlobal()
	cases := map[string]string{
		"(first (list 1 2 3))": "1",
		"(rest (list 1 2 3))":  "(2 3)",
		"(first (list))":       "nil",
		"(rest (list))":        "()",
		"(first 5)":            "nil",
		"(rest 5)":             "nil",
	}
	for src, want := range cases {
		got := printer.PrStr(mustEval(t, global, ev, src))
		if got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestRestThenConsRoundTrips(t *testing.T) {
	global, ev := newGlobal()
	if got := printer.PrStr(mustEval(t, global, ev, "(cons 1 (rest (cons 1 (list 2 3))))")); got != "(1 2 3)" {
		t.Errorf("rest(cons(x,l)) round trip = %s, want (1 2 3)", got)
	}
}

func TestConsAlwaysProducesAList(t *testing.T) {
	global, ev := newGlobal()
	v := mustEval(t, global, ev, "(cons 1 [2 3])")
	if v.Kind() != values.KindList {
		t.Errorf("cons onto a vector produced Kind %s, want list", v.Kind())
	}
}

func TestStringBuiltins(t *testing.T) {
	global, ev := newGlobal()
	if got := printer.PrStr(mustEval(t, global, ev, `(str "a" "b" 1)`)); got != `"ab1"` {
		t.Errorf(`str = %s, want "ab1"`, got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, `(pr-str "a" "b")`)); got != `"\"a\" \"b\""` {
		t.Errorf(`pr-str = %s`, got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, `(substr "hello" 1 3)`)); got != `"ell"` {
		t.Errorf(`substr = %s, want "ell"`, got)
	}
}

func TestAtomBuiltins(t *testing.T) {
	global, ev := newGlobal()
	mustEval(t, global, ev, "(def a (atom 1))")
	if got := printer.PrStr(mustEval(t, global, ev, "(deref a)")); got != "1" {
		t.Errorf("deref = %s, want 1", got)
	}
	mustEval(t, global, ev, "(reset! a 2)")
	if got := printer.PrStr(mustEval(t, global, ev, "@a")); got != "2" {
		t.Errorf("@a after reset! = %s, want 2", got)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	global, ev := newGlobal()
	mustEval(t, global, ev, `(def f (with-meta (fn (x) x) (hash-map "doc" "identity")))`)
	got := mustEval(t, global, ev, `(get (meta f) "doc")`)
	if printer.PrStr(got) != `"identity"` {
		t.Errorf(`(get (meta f) "doc") = %s, want "identity"`, printer.PrStr(got))
	}
}

func TestInternDeduplicatesAcrossCalls(t *testing.T) {
	global, ev := newGlobal()
	a := mustEval(t, global, ev, `(intern "shared")`)
	b := mustEval(t, global, ev, `(intern "shared")`)
	as, bs := a.(values.Str).Text(), b.(values.Str).Text()
	if as != bs || unsafe.StringData(as) != unsafe.StringData(bs) {
		t.Errorf("intern results do not share storage: %v vs %v", a, b)
	}
}

func TestApplyAndEvalBuiltins(t *testing.T) {
	global, ev := newGlobal()
	mustEval(t, global, ev, "(def add2 (fn (a b) (+ a b)))")
	if got := printer.PrStr(mustEval(t, global, ev, "(apply add2 (list 3 4))")); got != "7" {
		t.Errorf("apply = %s, want 7", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(apply + 1 2 (list 3 4))")); got != "10" {
		t.Errorf("apply with leading args = %s, want 10", got)
	}
	if got := printer.PrStr(mustEval(t, global, ev, "(eval (list '+ 1 2))")); got != "3" {
		t.Errorf("eval = %s, want 3", got)
	}
}

func TestApplyRejectsMacros(t *testing.T) {
	global, ev := newGlobal()
	mustEval(t, global, ev, "(def m (macro (x) x))")
	v, _ := reader.ReadStr("(apply m (list 1))", nil)
	if _, err := ev.Eval(v, global); err == nil {
		t.Errorf("apply on a macro: expected an error")
	}
}

func TestTypePredicates(t *testing.T) {
	global, ev := newGlobal()
	cases := map[string]string{
		`(number? 1)`:            "true",
		`(number? "1")`:          "false",
		`(string? "a")`:          "true",
		`(string? :a)`:           "false",
		`(symbol? 'a)`:           "true",
		`(symbol? "a")`:          "false",
		`(keyword? :a)`:          "true",
		`(keyword? 'a)`:          "false",
		`(map? (hash-map))`:      "true",
		`(map? (assoc (hash-map) "a" 1))`: "true",
		`(map? (list))`:          "false",
	}
	for src, want := range cases {
		got := printer.PrStr(mustEval(t, global, ev, src))
		if got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestComparisonBuiltins(t *testing.T) {
	global, ev := newGlobal()
	cases := map[string]string{
		"(< 1 2)":  "true",
		"(<= 2 2)": "true",
		"(> 1 2)":  "false",
		"(>= 3 2)": "true",
		"(= 1 1)":  "true",
		"(= (list 1 2) [1 2])": "false",
		"(list-equal (list 1 2) [1 2])": "true",
	}
	for src, want := range cases {
		got := printer.PrStr(mustEval(t, global, ev, src))
		if got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}
