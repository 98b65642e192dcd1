// Package hhas maps bytecode bitmasks to the textual tokens embedded in
// the assembly format. Decoding is best-effort: a bit with no name for
// the requested context is skipped, never reported as an error, so the
// paired parser must not expect a token for every set bit.
package hhas

import "strings"

// AttrContext identifies the syntactic position an attribute bitmask was
// read from. Contexts are single bits so callers can OR them together
// when a declaration plays more than one role.
type AttrContext int

const (
	ContextClass       AttrContext = 0x1
	ContextFunc        AttrContext = 0x2
	ContextProp        AttrContext = 0x4
	ContextTraitImport AttrContext = 0x8
	ContextAlias       AttrContext = 0x10
	ContextParameter   AttrContext = 0x20
	ContextConstant    AttrContext = 0x40
)

var contextNames = []struct {
	ctx  AttrContext
	name string
}{
	{ContextClass, "class"},
	{ContextFunc, "func"},
	{ContextProp, "prop"},
	{ContextTraitImport, "trait_import"},
	{ContextAlias, "alias"},
	{ContextParameter, "parameter"},
	{ContextConstant, "constant"},
}

func (c AttrContext) String() string {
	var names []string

	for _, e := range contextNames {
		if c&e.ctx != 0 {
			names = append(names, e.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}
