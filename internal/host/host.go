// Package host supplies the filesystem-facing primitives that sit
// just outside the interpreter core: reading a source file into a
// string for `load-file`/`slurp`, and (when built with the maldl tag)
// loading a compiled shared-object library.
package host

import "os"

// Slurp reads the file at path and returns its contents as a string,
// used by the `slurp` builtin and by the CLI's `load-file` bootstrap.
func Slurp(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
