package hhbc

// FCallArgsFlags describes a single call site. The argument-shape bits
// (unpack, generics, async eager offset) are encoded structurally in the
// assembly text rather than as flag tokens, so they have no entry in the
// decoder's name table.
type FCallArgsFlags uint16

const (
	FCallNone FCallArgsFlags = 0

	FCallHasUnpack            FCallArgsFlags = 1 << 0
	FCallHasGenerics          FCallArgsFlags = 1 << 1
	FCallLockWhileUnwinding   FCallArgsFlags = 1 << 2
	FCallSkipRepack           FCallArgsFlags = 1 << 3
	FCallSkipCoeffectsCheck   FCallArgsFlags = 1 << 4
	FCallEnforceMutableReturn FCallArgsFlags = 1 << 5
	FCallEnforceReadonlyThis  FCallArgsFlags = 1 << 6
	FCallExplicitContext      FCallArgsFlags = 1 << 7
	FCallHasAsyncEagerOffset  FCallArgsFlags = 1 << 8
)

// Has reports whether all bits of flag are set in f.
func (f FCallArgsFlags) Has(flag FCallArgsFlags) bool {
	return f&flag == flag
}
