package hhas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muglug/hhvm/internal/hhbc"
)

func TestParseAttr(t *testing.T) {
	attr, ok := ParseAttr(ContextFunc, "public")
	require.True(t, ok)
	require.Equal(t, hhbc.AttrPublic, attr)

	attr, ok = ParseAttr(ContextClass, "enum")
	require.True(t, ok)
	require.Equal(t, hhbc.AttrEnum, attr)

	// Known token, wrong context.
	_, ok = ParseAttr(ContextClass, "lsb")
	require.False(t, ok)

	// Unknown token.
	_, ok = ParseAttr(ContextFunc, "bogus")
	require.False(t, ok)
}

func TestParseAttrRoundTrip(t *testing.T) {
	for _, e := range attrTable {
		for _, c := range contextNames {
			if e.ctx&c.ctx == 0 {
				continue
			}

			attr, ok := ParseAttr(c.ctx, e.name)
			require.True(t, ok, "%s in %s", e.name, c.ctx)
			require.Equal(t, e.attr, attr, "%s in %s", e.name, c.ctx)

			require.Equal(t, []string{e.name}, AttrsToVec(c.ctx, attr),
				"%s in %s", e.name, c.ctx)
		}
	}
}

func TestParseTypeFlag(t *testing.T) {
	flag, ok := ParseTypeFlag("nullable")
	require.True(t, ok)
	require.Equal(t, hhbc.ConstraintNullable, flag)

	_, ok = ParseTypeFlag("bogus")
	require.False(t, ok)

	for _, e := range typeFlagTable {
		flag, ok := ParseTypeFlag(e.name)
		require.True(t, ok, e.name)
		require.Equal(t, e.flag, flag, e.name)
		require.Equal(t, e.name, TypeFlagsToString(flag))
	}
}

func TestParseFCallFlag(t *testing.T) {
	flag, ok := ParseFCallFlag("SkipRepack")
	require.True(t, ok)
	require.Equal(t, hhbc.FCallSkipRepack, flag)

	// Structural bits have no token to parse.
	_, ok = ParseFCallFlag("HasUnpack")
	require.False(t, ok)

	for _, e := range fcallFlagTable {
		flag, ok := ParseFCallFlag(e.name)
		require.True(t, ok, e.name)
		require.Equal(t, e.flag, flag, e.name)
		require.Equal(t, e.name, FcallFlagsToString(flag))
	}
}

func TestAttrTableNamesUnique(t *testing.T) {
	seen := make(map[string]bool, len(attrTable))

	for _, e := range attrTable {
		require.False(t, seen[e.name], "duplicate name %q", e.name)
		seen[e.name] = true
	}
}

func TestAttrTableSharedBitsDisjointContexts(t *testing.T) {
	// Two entries may share a bit only when their context masks are
	// disjoint; otherwise a single decode could render both readings.
	for i, a := range attrTable {
		for _, b := range attrTable[i+1:] {
			if a.attr&b.attr != 0 {
				require.Zero(t, a.ctx&b.ctx,
					"%q and %q share a bit and a context", a.name, b.name)
			}
		}
	}
}
