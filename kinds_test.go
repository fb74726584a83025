// kinds_test.go — kind hierarchy and registration.
package xgxresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_BuiltinsAreDefined(t *testing.T) {
	t.Parallel()

	seen := map[Kind]bool{}
	for _, k := range BuiltinKinds() {
		require.Falsef(t, seen[k], "duplicate builtin kind %q", k)
		seen[k] = true
		assert.Truef(t, k.IsBuiltin(), "%q should be builtin", k)
		assert.Truef(t, k.Defined(), "%q should be defined", k)
		assert.Truef(t, k.Is(KindAny), "%q should descend from the root", k)
	}
	assert.False(t, Kind("no_such_kind").IsBuiltin())
	assert.False(t, Kind("no_such_kind").Defined())
}

func TestKinds_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	b := BuiltinKinds()
	b[0] = "mutated"
	assert.Equal(t, KindAny, BuiltinKinds()[0])

	l := LanguageLevelKinds()
	l[0] = "mutated"
	assert.Equal(t, KindAttribute, LanguageLevelKinds()[0])

	s := SystemLevelKinds()
	s[0] = "mutated"
	assert.Equal(t, KindMemory, SystemLevelKinds()[0])
}

func TestKinds_Hierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind, target Kind
		want         bool
	}{
		{KindIndex, KindLookup, true},
		{KindKey, KindLookup, true},
		{KindFileNotFound, KindOS, true},
		{KindTimeout, KindOS, true},
		{KindParse, KindValue, true},
		{KindNotImplemented, KindRuntime, true},
		{KindZeroDivision, KindArithmetic, true},
		{KindLookup, KindIndex, false},
		{KindParse, KindOS, false},
		{KindType, KindValue, false},
		{KindKey, KindKey, true},
		{Kind("unknown"), KindAny, true},
		{Kind("unknown"), KindRuntime, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.kind.Is(tt.target), "%q.Is(%q)", tt.kind, tt.target)
	}

	assert.Equal(t, KindLookup, KindIndex.Parent())
	assert.Equal(t, KindAny, KindAny.Parent())
	assert.Equal(t, KindAny, Kind("unknown").Parent())
}

func TestKinds_MatchesAny(t *testing.T) {
	t.Parallel()

	assert.True(t, KindKey.matchesAny([]Kind{KindOS, KindLookup}))
	assert.False(t, KindKey.matchesAny([]Kind{KindOS, KindValue}))
	assert.False(t, KindKey.matchesAny(nil))
}

func TestDefineKind(t *testing.T) {
	t.Parallel()

	billing := DefineKind("kinds_test_billing", "")
	declined := DefineKind("kinds_test_declined", billing)

	assert.True(t, declined.Defined())
	assert.True(t, declined.Is(billing))
	assert.True(t, declined.Is(KindAny))
	assert.False(t, declined.IsBuiltin())
	assert.Equal(t, billing, declined.Parent())

	// Same parent again is a no-op.
	assert.Equal(t, declined, DefineKind("kinds_test_declined", billing))

	ae := requireAssertion(t, func() { DefineKind("kinds_test_declined", KindValue) })
	assert.Contains(t, ae.Error(), "already defined")

	ae = requireAssertion(t, func() { DefineKind("kinds_test_loop", "kinds_test_loop") })
	assert.Contains(t, ae.Error(), "own ancestor")

	requireAssertion(t, func() { DefineKind("", KindValue) })
	requireAssertion(t, func() { DefineKind(KindAny, KindValue) })
}
