package printer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-mal/internal/values"
)

func TestPrStrReadableEscapesStrings(t *testing.T) {
	got := PrStr(values.NewString("a\nb\"c"))
	want := `"a\nb\"c"`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStrRawPassesStringsThrough(t *testing.T) {
	got := Str(values.NewString("a\nb"))
	if got != "a\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestPrStrAtoms(t *testing.T) {
	snaps.MatchSnapshot(t, PrStr(values.Nil))
	snaps.MatchSnapshot(t, PrStr(values.True))
	snaps.MatchSnapshot(t, PrStr(values.False))
	snaps.MatchSnapshot(t, PrStr(values.NewInt(-7)))
	snaps.MatchSnapshot(t, PrStr(values.NewKeyword("foo")))
}

func TestPrStrListVsVector(t *testing.T) {
	l := values.NewList(values.NewInt(1), values.NewInt(2))
	v := values.NewVector(values.NewInt(1), values.NewInt(2))
	snaps.MatchSnapshot(t, PrStr(l))
	snaps.MatchSnapshot(t, PrStr(v))
}

func TestPrStrAtomValue(t *testing.T) {
	a := values.NewAtom(values.NewInt(5))
	snaps.MatchSnapshot(t, PrStr(a))
}

func TestPrStrFunctionsAndBuiltins(t *testing.T) {
	b := values.NewBuiltin("+", func(interface{}, []values.Value) (values.Value, error) { return values.Nil, nil })
	snaps.MatchSnapshot(t, PrStr(b))
	fn := &values.Function{Params: []string{"x"}, Body: values.NewInt(1)}
	snaps.MatchSnapshot(t, PrStr(fn))
}
