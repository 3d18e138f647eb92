package tuple_test

import (
	"strconv"
	"testing"

	"github.com/flowscan/tuple"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var p tuple.Pair[int, string]
	assert.Same(t, &p, p.Set(1, "a"))
	assert.Equal(t, tuple.NewPair(1, "a"), p)
}

func TestAssign(t *testing.T) {
	src := tuple.NewPair(newBuffer(1, 2), "src")
	var dst tuple.Pair[buffer, string]
	assert.Same(t, &dst, dst.Assign(&src))
	assert.Equal(t, src, dst)

	dst.First.data[0] = 9
	assert.Equal(t, []int{1, 2}, src.First.data)
}

func TestAssignSelf(t *testing.T) {
	p := tuple.NewPair(newBuffer(1, 2), "self")
	assert.Same(t, &p, p.Assign(&p))
	assert.Equal(t, []int{1, 2}, p.First.data)
	assert.Equal(t, "self", p.Second)
}

func TestAssignChain(t *testing.T) {
	src := tuple.NewPair(3, "c")
	var a, b tuple.Pair[int, string]
	a.Assign(b.Assign(&src))
	assert.Equal(t, src, a)
	assert.Equal(t, src, b)
}

func TestMoveAssign(t *testing.T) {
	var x tuple.Pair[int, string]
	y := tuple.NewPair(1, "asd")
	assert.Same(t, &x, x.MoveAssign(&y))
	assert.Equal(t, tuple.NewPair(1, "asd"), x)
	assert.Equal(t, tuple.Zero[int, string](), y)
}

func TestMoveAssignSelf(t *testing.T) {
	p := tuple.NewPair(1, "asd")
	p.MoveAssign(&p)
	assert.Equal(t, tuple.NewPair(1, "asd"), p)
}

func TestAssignConvert(t *testing.T) {
	var dst tuple.Pair[string, int64]
	src := tuple.NewPair(5, int32(-3))
	ret := tuple.AssignConvert(&dst, src, strconv.Itoa, func(v int32) int64 { return int64(v) })
	assert.Same(t, &dst, ret)
	assert.Equal(t, tuple.NewPair("5", int64(-3)), dst)
	assert.Equal(t, tuple.NewPair(5, int32(-3)), src)
}

func TestMoveAssignConvert(t *testing.T) {
	var dst tuple.Pair[string, string]
	src := tuple.NewPair(5, "kept")
	tuple.MoveAssignConvert(&dst, &src, strconv.Itoa, tuple.Identity[string])
	assert.Equal(t, tuple.NewPair("5", "kept"), dst)
	assert.Equal(t, tuple.Zero[int, string](), src)
}

func TestMoveAssignConvertSameType(t *testing.T) {
	p := tuple.NewPair(1, "a")
	tuple.MoveAssignConvert(&p, &p, tuple.Identity[int], tuple.Identity[string])
	assert.Equal(t, tuple.NewPair(1, "a"), p)
}
