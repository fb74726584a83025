// option_test.go — Option container semantics.
package xgxresult

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_Equality(t *testing.T) {
	t.Parallel()

	assert.True(t, Some("foo").Equal(Some("foo")))
	assert.False(t, Some("foo").Equal(Some("bar")))
	assert.False(t, Some("foo").Equal(None[string]()))
	assert.False(t, None[string]().Equal(Some("foo")))
	assert.True(t, None[string]().Equal(None[string]()))
	assert.True(t, Some([]int{1, 2}).Equal(Some([]int{1, 2})))
}

func TestOption_Hash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("foo").Hash(), Some("foo").Hash())
	assert.NotEqual(t, Some("foo").Hash(), Some("bar").Hash())
	assert.NotEqual(t, Some("foo").Hash(), None[string]().Hash())
}

func TestOption_EqualImpliesSameHash(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name string
		a, b Option[box]
		want bool
	}{
		{"pointers to equal ints", Some(box{n: intPtr(1)}), Some(box{n: intPtr(1)}), true},
		{"pointers to different ints", Some(box{n: intPtr(1)}), Some(box{n: intPtr(2)}), false},
		{"slices", Some(box{tags: []string{"a", "b"}}), Some(box{tags: []string{"a", "b"}}), true},
		{"maps", Some(box{meta: map[string]*int{"x": intPtr(1), "y": nil}}), Some(box{meta: map[string]*int{"y": nil, "x": intPtr(1)}}), true},
		{"none", None[box](), None[box](), true},
		{"some and none", Some(box{}), None[box](), false},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}

	base := New(KindValue, "v")
	assert.False(t, Some[error](base).Equal(Some[error](fmt.Errorf("ctx: %w", base))))
	assert.True(t, Some[error](base).Equal(Some[error](New(KindValue, "v"))))
	assert.Equal(t, Some[error](base).Hash(), Some[error](New(KindValue, "v")).Hash())
}

func TestOption_Presence(t *testing.T) {
	t.Parallel()

	some := Some("foo")
	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	assert.True(t, Some("").IsSome(), "a present zero value is still present")

	none := None[string]()
	assert.True(t, none.IsNone())
	assert.False(t, none.IsSome())
}

func TestOption_Extraction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo", Some("foo").Unwrap())
	assert.Equal(t, "foo", Some("foo").Expect("present"))
	assert.Equal(t, "bar", None[string]().UnwrapOr("bar"))
	assert.Equal(t, "foo", Some("foo").UnwrapOr("bar"))

	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	ae := requireAssertion(t, func() { None[int]().Unwrap() })
	assert.Equal(t, KindAssertion, KindOf(ae))

	ae = requireAssertion(t, func() { None[int]().Expect("need a port") })
	assert.Contains(t, ae.Error(), "need a port")
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(foo)", Some("foo").String())
	assert.Equal(t, "None", None[int]().String())
}
