package hhas

import "github.com/muglug/hhvm/internal/hhbc"

// ParseAttr resolves an assembly token back to its attribute bit for the
// given context. Tokens unknown to the table, or known only under other
// contexts, report false.
func ParseAttr(ctx AttrContext, name string) (hhbc.Attr, bool) {
	for _, e := range attrTable {
		if e.ctx&ctx != 0 && e.name == name {
			return e.attr, true
		}
	}

	return hhbc.AttrNone, false
}

// ParseTypeFlag resolves a type-constraint token back to its bit.
func ParseTypeFlag(name string) (hhbc.TypeConstraintFlags, bool) {
	for _, e := range typeFlagTable {
		if e.name == name {
			return e.flag, true
		}
	}

	return hhbc.ConstraintNoFlags, false
}

// ParseFCallFlag resolves a call-site token back to its bit.
func ParseFCallFlag(name string) (hhbc.FCallArgsFlags, bool) {
	for _, e := range fcallFlagTable {
		if e.name == name {
			return e.flag, true
		}
	}

	return hhbc.FCallNone, false
}
