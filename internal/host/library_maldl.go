//go:build maldl

package host

import (
	"fmt"
	"plugin"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
)

// LoadLibrary dynamically links the shared object at path and invokes
// its exported MalInit entry point. Go's plugin package only links on
// Linux/ELF with cgo enabled, which is why this implementation is
// gated behind the maldl build tag.
func LoadLibrary(path string, ev *eval.Evaluator, global *env.Frame) error {
	p, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("load-library: %w", err)
	}
	sym, err := p.Lookup("MalInit")
	if err != nil {
		return fmt.Errorf("load-library: %s has no MalInit entry: %w", path, err)
	}
	init, ok := sym.(func(*eval.Evaluator, *env.Frame) bool)
	if !ok {
		return fmt.Errorf("load-library: %s MalInit has the wrong signature", path)
	}
	if !init(ev, global) {
		return fmt.Errorf("load-library: %s MalInit reported failure", path)
	}
	return nil
}
