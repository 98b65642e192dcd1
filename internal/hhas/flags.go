package hhas

import (
	"strings"

	"github.com/muglug/hhvm/internal/hhbc"
)

// attrEntry associates one attribute bit with its assembly token and the
// contexts in which the bit carries that meaning.
type attrEntry struct {
	attr hhbc.Attr
	ctx  AttrContext
	name string
}

// attrTable is the canonical attribute name table. Decoded masks render
// in table order, so entries must not be reordered without updating the
// paired parser's expectations.
var attrTable = []attrEntry{
	{hhbc.AttrPublic, ContextFunc | ContextProp | ContextTraitImport, "public"},
	{hhbc.AttrProtected, ContextFunc | ContextProp | ContextTraitImport, "protected"},
	{hhbc.AttrPrivate, ContextFunc | ContextProp | ContextTraitImport, "private"},
	{hhbc.AttrInternal, ContextClass | ContextFunc | ContextProp | ContextConstant, "internal"},
	{hhbc.AttrStatic, ContextFunc | ContextProp | ContextTraitImport, "static"},
	{hhbc.AttrAbstract, ContextClass | ContextFunc | ContextTraitImport | ContextConstant, "abstract"},
	{hhbc.AttrFinal, ContextClass | ContextFunc | ContextTraitImport, "final"},
	{hhbc.AttrInterface, ContextClass, "interface"},
	{hhbc.AttrTrait, ContextClass, "trait"},
	{hhbc.AttrEnum, ContextClass, "enum"},
	{hhbc.AttrEnumClass, ContextClass, "enum_class"},
	{hhbc.AttrSealed, ContextClass, "sealed"},
	{hhbc.AttrForbidDynamicProps, ContextClass, "no_dynamic_props"},
	{hhbc.AttrNoExpandTrait, ContextClass, "no_expand_trait"},
	{hhbc.AttrIsClosureClass, ContextClass, "is_closure_class"},
	{hhbc.AttrDynamicallyConstructible, ContextClass, "dyn_constructible"},
	{hhbc.AttrIsConst, ContextClass | ContextProp, "is_const"},
	{hhbc.AttrBuiltin, ContextClass | ContextFunc, "builtin"},
	{hhbc.AttrPersistent, ContextClass | ContextFunc | ContextAlias, "persistent"},
	{hhbc.AttrUnique, ContextClass | ContextFunc, "unique"},
	{hhbc.AttrNoOverride, ContextClass | ContextFunc, "no_override"},
	{hhbc.AttrDeepInit, ContextProp, "deep_init"},
	{hhbc.AttrLSB, ContextProp, "lsb"},
	{hhbc.AttrLateInit, ContextProp, "late_init"},
	{hhbc.AttrReadonly, ContextProp | ContextParameter, "readonly"},
	{hhbc.AttrSystemInitialValue, ContextProp, "sys_initial_val"},
	{hhbc.AttrNoImplicitNullable, ContextProp, "no_implicit_null"},
	{hhbc.AttrNoBadRedeclare, ContextProp, "no_bad_redeclare"},
	{hhbc.AttrInitialSatisfiesTC, ContextProp, "initial_satisfies_tc"},
	{hhbc.AttrNoInjection, ContextFunc, "no_injection"},
	{hhbc.AttrInterceptable, ContextFunc, "interceptable"},
	{hhbc.AttrDynamicallyCallable, ContextFunc, "dyn_callable"},
	{hhbc.AttrIsFoldable, ContextFunc, "foldable"},
	{hhbc.AttrNoFCallBuiltin, ContextFunc, "no_fcall_builtin"},
	{hhbc.AttrSupportsAsyncEagerReturn, ContextFunc, "supports_async_eager_return"},
	{hhbc.AttrReadonlyReturn, ContextFunc, "readonly_return"},
	{hhbc.AttrReadonlyThis, ContextFunc, "readonly_this"},
	{hhbc.AttrIsMethCaller, ContextFunc, "is_meth_caller"},
	{hhbc.AttrProvenanceSkipFrame, ContextFunc, "prov_skip_frame"},
	{hhbc.AttrVariadic, ContextParameter, "variadic"},
	{hhbc.AttrInOut, ContextParameter, "inout"},
}

// typeFlagTable names every type-constraint bit; constraints are not
// context-sensitive.
var typeFlagTable = []struct {
	flag hhbc.TypeConstraintFlags
	name string
}{
	{hhbc.ConstraintNullable, "nullable"},
	{hhbc.ConstraintExtendedHint, "extended_hint"},
	{hhbc.ConstraintTypeVar, "type_var"},
	{hhbc.ConstraintSoft, "soft"},
	{hhbc.ConstraintTypeConstant, "type_constant"},
	{hhbc.ConstraintResolved, "resolved"},
	{hhbc.ConstraintNoMockObjects, "no_mock_objects"},
	{hhbc.ConstraintDisplayNullable, "display_nullable"},
	{hhbc.ConstraintUpperBound, "upper_bound"},
}

// fcallFlagTable names the call-site bits that render as flag tokens.
// Argument-shape bits (unpack, generics, async eager offset) are written
// structurally by the emitter and deliberately have no entry here.
var fcallFlagTable = []struct {
	flag hhbc.FCallArgsFlags
	name string
}{
	{hhbc.FCallLockWhileUnwinding, "LockWhileUnwinding"},
	{hhbc.FCallSkipRepack, "SkipRepack"},
	{hhbc.FCallSkipCoeffectsCheck, "SkipCoeffectsCheck"},
	{hhbc.FCallEnforceMutableReturn, "EnforceMutableReturn"},
	{hhbc.FCallEnforceReadonlyThis, "EnforceReadonlyThis"},
	{hhbc.FCallExplicitContext, "ExplicitContext"},
}

// AttrsToVec decodes attrs under ctx into assembly tokens, in table
// order. Bits that are unset, unnamed, or not legal in ctx are skipped.
func AttrsToVec(ctx AttrContext, attrs hhbc.Attr) []string {
	var vec []string

	for _, e := range attrTable {
		if e.ctx&ctx != 0 && attrs&e.attr != 0 {
			vec = append(vec, e.name)
		}
	}

	return vec
}

// AttrsToString decodes attrs under ctx into a space-separated token
// string, empty when no named bit is set.
func AttrsToString(ctx AttrContext, attrs hhbc.Attr) string {
	return strings.Join(AttrsToVec(ctx, attrs), " ")
}

// TypeFlagsToString decodes type-constraint flags into a space-separated
// token string.
func TypeFlagsToString(flags hhbc.TypeConstraintFlags) string {
	var vec []string

	for _, e := range typeFlagTable {
		if flags&e.flag != 0 {
			vec = append(vec, e.name)
		}
	}

	return strings.Join(vec, " ")
}

// FcallFlagsToString decodes call-site flags into a space-separated
// token string.
func FcallFlagsToString(flags hhbc.FCallArgsFlags) string {
	var vec []string

	for _, e := range fcallFlagTable {
		if flags&e.flag != 0 {
			vec = append(vec, e.name)
		}
	}

	return strings.Join(vec, " ")
}
