package values

import "unsafe"

// addrOf extracts the pointer's bit pattern for use as an identity
// hash. No pointer arithmetic is performed and the result is never
// dereferenced.
func addrOf(p *Builtin) uintptr {
	return uintptr(unsafe.Pointer(p))
}
