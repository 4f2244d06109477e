package host

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
)

// MalInit is the signature a loadable library must export: given the
// evaluator and the global frame to install new builtins into, it
// reports whether initialization succeeded.
type MalInit func(ev *eval.Evaluator, global *env.Frame) bool
