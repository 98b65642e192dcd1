package hhbc

// TypeConstraintFlags qualifies how a type constraint is enforced. These
// flags are not context-sensitive: every bit means the same thing
// wherever a constraint appears.
type TypeConstraintFlags uint16

const (
	ConstraintNoFlags TypeConstraintFlags = 0

	ConstraintNullable TypeConstraintFlags = 1 << 0
	// 1 << 1 carried a retired marker; it stays unassigned so encoded
	// values keep their meaning.
	ConstraintExtendedHint    TypeConstraintFlags = 1 << 2
	ConstraintTypeVar         TypeConstraintFlags = 1 << 3
	ConstraintSoft            TypeConstraintFlags = 1 << 4
	ConstraintTypeConstant    TypeConstraintFlags = 1 << 5
	ConstraintResolved        TypeConstraintFlags = 1 << 6
	ConstraintNoMockObjects   TypeConstraintFlags = 1 << 7
	ConstraintDisplayNullable TypeConstraintFlags = 1 << 8
	ConstraintUpperBound      TypeConstraintFlags = 1 << 9
)

// Has reports whether all bits of flag are set in f.
func (f TypeConstraintFlags) Has(flag TypeConstraintFlags) bool {
	return f&flag == flag
}
