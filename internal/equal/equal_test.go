package equal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

func TestDefaultBasicKinds(t *testing.T) {
	assert.True(t, Default(1, 1))
	assert.False(t, Default(1, 2))
	assert.True(t, Default("a", "a"))
	assert.False(t, Default(true, false))
	assert.True(t, Default(1.5, 1.5))
}

func TestDefaultComposite(t *testing.T) {
	assert.True(t, Default([]int{1, 2}, []int{1, 2}))
	assert.False(t, Default([]int{1, 2}, []int{2, 1}))
	assert.True(t, Default(point{1, 2}, point{1, 2}))
	assert.True(t, Default(map[string]int{"a": 1}, map[string]int{"a": 1}))
}

func TestDefaultMixedDynamicTypes(t *testing.T) {
	var a, b any = 1, "1"
	assert.False(t, Default(a, b))
	assert.False(t, Default(b, a))

	var c, d any = int64(3), int64(3)
	assert.True(t, Default(c, d))

	var n any
	assert.False(t, Default(a, n))
}

func TestOr(t *testing.T) {
	always := func(a, b int) bool { return true }
	assert.True(t, Or(Func[int](always))(1, 2))
	assert.False(t, Or[int](nil)(1, 2))
}

type todo struct{ Title string }

type tagged struct {
	Name string
	Tags []string
}

func TestIdentityBasicKinds(t *testing.T) {
	assert.True(t, Identity(1, 1))
	assert.False(t, Identity(1, 2))
	assert.True(t, Identity("a", "a"))
	assert.True(t, Identity(point{1, 2}, point{1, 2}))
	assert.False(t, Identity(point{1, 2}, point{2, 1}))
}

func TestIdentityPointers(t *testing.T) {
	a := &todo{Title: "milk"}
	b := &todo{Title: "milk"}

	assert.True(t, Identity(a, a))
	assert.False(t, Identity(a, b))
	assert.True(t, Identity[*todo](nil, nil))
	assert.False(t, Identity[*todo](a, nil))
}

func TestIdentitySlices(t *testing.T) {
	s := []int{1, 2, 3}

	assert.True(t, Identity(s, s))
	assert.False(t, Identity(s, []int{1, 2, 3}))
	assert.False(t, Identity(s, s[:2]), "same backing array, different length")
	assert.True(t, Identity[[]int](nil, nil))
	assert.False(t, Identity[[]int](nil, []int{}))
}

func TestIdentityMapsAndFuncs(t *testing.T) {
	m := map[string]int{"a": 1}
	assert.True(t, Identity(m, m))
	assert.False(t, Identity(m, map[string]int{"a": 1}))

	f := func() {}
	assert.False(t, Identity(f, f))
}

func TestIdentityStructsWithReferences(t *testing.T) {
	tags := []string{"x"}
	assert.True(t, Identity(tagged{"a", tags}, tagged{"a", tags}))
	assert.False(t, Identity(tagged{"a", tags}, tagged{"a", []string{"x"}}))
	assert.False(t, Identity(tagged{"a", tags}, tagged{"b", tags}))
}

func TestIdentityInterfaces(t *testing.T) {
	p := &todo{}
	var a, b any = p, p
	assert.True(t, Identity(a, b))

	var c any = &todo{}
	assert.False(t, Identity(a, c))

	var d, e any = 1, "1"
	assert.False(t, Identity(d, e))

	var n1, n2 any
	assert.True(t, Identity(n1, n2))
	assert.False(t, Identity(a, n1))

	var s1, s2 any = []int{1}, []int{1}
	assert.False(t, Identity(s1, s2))
}

func TestIdentityOr(t *testing.T) {
	always := func(a, b *todo) bool { return true }
	assert.True(t, IdentityOr(Func[*todo](always))(&todo{}, &todo{}))
	assert.False(t, IdentityOr[*todo](nil)(&todo{}, &todo{}))
}
