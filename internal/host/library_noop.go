//go:build !maldl

package host

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
)

// LoadLibrary is the default, plugin-free build of this primitive:
// dynamic library loading requires the maldl build tag (and, via Go's
// plugin package, a Linux/ELF target with cgo enabled).
func LoadLibrary(path string, ev *eval.Evaluator, global *env.Frame) error {
	return fmt.Errorf("load-library: dynamic library loading not compiled in")
}
