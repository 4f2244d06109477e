// Package builtins implements the core builtin functions: arithmetic,
// sequence/map/string operations, atom operations, and the evaluator
// re-entry points (eval/apply/throw/meta). Registration is split one
// file per concern.
package builtins

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/values"
)

// def1 registers a single builtin under name in frame.
func def1(frame *env.Frame, name string, fn values.BuiltinFunc) {
	frame.Set(name, values.NewBuiltin(name, fn))
}

// Register installs every core builtin into global. ev is the
// Evaluator that re-entrant builtins (eval, apply) call back into;
// global is also the frame `eval` runs bodies in — eval always
// evaluates against the global frame, never the caller's.
func Register(global *env.Frame, ev *eval.Evaluator) {
	registerArith(global)
	registerSeq(global)
	registerMaps(global)
	registerStrings(global)
	registerValueOps(global)
	registerRuntime(global, ev)
	registerHost(global, ev)
}
