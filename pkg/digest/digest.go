// Package digest fingerprints values and ordered sequences with SipHash-2-4.
package digest

import (
	"encoding/binary"
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/dchest/siphash"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

func isnil(v interface{}) bool {
	return v == nil || (reflect.ValueOf(v).Kind() == reflect.Ptr && reflect.ValueOf(v).IsNil())
}

// Key hashes a string, byte slice or integer. It panics on nil and on any
// other type.
func Key(v interface{}) uint64 {
	if isnil(v) {
		panic("v cannot be nil")
	}

	switch x := v.(type) {
	case string:
		return stringHash(x)
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	case int:
		return uint64Hash(uint64(x))
	case int8:
		return uint64Hash(uint64(x))
	case int16:
		return uint64Hash(uint64(x))
	case int32:
		return uint64Hash(uint64(x))
	case int64:
		return uint64Hash(uint64(x))
	case uint:
		return uint64Hash(uint64(x))
	case uint8:
		return uint64Hash(uint64(x))
	case uint16:
		return uint64Hash(uint64(x))
	case uint32:
		return uint64Hash(uint64(x))
	case uint64:
		return uint64Hash(x)
	case uintptr:
		return uint64Hash(uint64(x))
	}

	panic(fmt.Errorf("unsupported v type %T", v))
}

// Seq folds the keys of seq in order, so equal elements in a different
// order give a different digest.
func Seq[T any](seq iter.Seq[T]) uint64 {
	h := siphash.New(sipKey())

	var buf [8]byte
	for v := range seq {
		binary.LittleEndian.PutUint64(buf[:], Key(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

func sipKey() []byte {
	key := make([]byte, 16)
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)
	return key
}

// zero copy from string to []byte
func stringHash(s string) uint64 {
	buf := unsafe.Slice(unsafe.StringData(s), len(s))
	return siphash.Hash(sipHashKey1, sipHashKey2, buf)
}

func uint64Hash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}
