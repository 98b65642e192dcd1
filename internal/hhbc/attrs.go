// Package hhbc defines the bitmask types attached to bytecode entities:
// declaration attributes, type-constraint flags and call-site flags. Only
// the bit layouts live here; the textual names and the context rules
// belong to internal/hhas.
package hhbc

// Attr is a declaration attribute bitmask. A bit value may be shared
// between attributes that can never appear in the same syntactic
// position (AttrEnum on classes reuses the AttrStatic bit, for example);
// the decoding context disambiguates.
type Attr uint32

// Class (C), function (F), property (P), trait import (T), alias (A),
// parameter (R) and constant (K) mark where each bit is meaningful.
const (
	AttrNone Attr = 0

	AttrForbidDynamicProps Attr = 1 << 0 // C
	AttrDeepInit           Attr = 1 << 0 // P

	AttrPublic    Attr = 1 << 1 // F P T
	AttrProtected Attr = 1 << 2 // F P T
	AttrPrivate   Attr = 1 << 3 // F P T

	AttrEnum   Attr = 1 << 4 // C
	AttrStatic Attr = 1 << 4 // F P T

	AttrSealed             Attr = 1 << 5 // C
	AttrSystemInitialValue Attr = 1 << 5 // P

	AttrNoInjection        Attr = 1 << 6 // F
	AttrNoImplicitNullable Attr = 1 << 6 // P

	AttrAbstract Attr = 1 << 7 // C F T K
	AttrFinal    Attr = 1 << 8 // C F T

	AttrInterface Attr = 1 << 9 // C
	AttrLSB       Attr = 1 << 9 // P

	AttrTrait    Attr = 1 << 10 // C
	AttrLateInit Attr = 1 << 10 // P

	AttrNoExpandTrait  Attr = 1 << 11 // C
	AttrNoBadRedeclare Attr = 1 << 11 // P

	AttrNoOverride         Attr = 1 << 12 // C F
	AttrInitialSatisfiesTC Attr = 1 << 12 // P

	AttrIsConst    Attr = 1 << 13 // C P
	AttrBuiltin    Attr = 1 << 14 // C F
	AttrPersistent Attr = 1 << 15 // C F A

	AttrDynamicallyConstructible Attr = 1 << 16 // C
	AttrDynamicallyCallable      Attr = 1 << 16 // F

	AttrInterceptable Attr = 1 << 17 // F

	AttrIsClosureClass           Attr = 1 << 18 // C
	AttrSupportsAsyncEagerReturn Attr = 1 << 18 // F

	AttrIsFoldable     Attr = 1 << 19 // F
	AttrNoFCallBuiltin Attr = 1 << 20 // F

	AttrVariadic Attr = 1 << 21 // R
	AttrInOut    Attr = 1 << 22 // R

	AttrReadonly       Attr = 1 << 23 // P R
	AttrReadonlyReturn Attr = 1 << 24 // F
	AttrReadonlyThis   Attr = 1 << 25 // F

	AttrInternal Attr = 1 << 26 // C F P K
	AttrUnique   Attr = 1 << 27 // C F

	AttrIsMethCaller        Attr = 1 << 28 // F
	AttrProvenanceSkipFrame Attr = 1 << 29 // F

	AttrEnumClass Attr = 1 << 30 // C
)

// Has reports whether all bits of flag are set in a.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}
