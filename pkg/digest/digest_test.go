package digest

import (
	"slices"
	"testing"

	"github.com/dchest/siphash"
	"github.com/stretchr/testify/assert"

	"github.com/snwfog/singly.go/pkg/singly"
)

func TestKey(t *testing.T) {
	assert.Equal(t, Key("abc"), Key([]byte("abc")))
	assert.Equal(t, siphash.Hash(sipHashKey1, sipHashKey2, []byte("abc")), Key("abc"))
	assert.Equal(t, Key(5), Key(uint64(5)))
	assert.NotEqual(t, Key(5), Key(6))
	assert.NotEqual(t, Key("a"), Key("b"))
}

func TestKeyPanics(t *testing.T) {
	assert.Panics(t, func() { Key(nil) })
	assert.Panics(t, func() { Key((*int)(nil)) })
	assert.Panics(t, func() { Key(1.5) })
}

func TestSeq(t *testing.T) {
	a := singly.NewLinkedList[string]()
	b := singly.NewLinkedList[string]()
	for _, v := range []string{"x", "y", "z"} {
		a.PushBack(v)
		b.PushFront(v)
	}

	assert.NotEqual(t, Seq(a.All()), Seq(b.All()))

	_, _ = b.PopFront()
	_, _ = b.PopFront()
	_, _ = b.PopFront()
	for _, v := range []string{"x", "y", "z"} {
		b.PushBack(v)
	}
	assert.Equal(t, Seq(a.All()), Seq(b.All()))
	assert.Equal(t, Seq(a.All()), Seq(slices.Values([]string{"x", "y", "z"})))
}

func TestSeqEmpty(t *testing.T) {
	empty := singly.NewLinkedList[int]()
	assert.Equal(t, Seq(empty.All()), Seq(slices.Values([]int{})))

	empty.PushBack(0)
	assert.NotEqual(t, Seq(slices.Values([]int{})), Seq(empty.All()))
}
