// hash.go — payload equality and hashing for Result and Option.
//
// Equal and Hash must agree: equal payloads hash alike.
//   - values compare with reflect.DeepEqual and hash by walking the same
//     structure (pointers followed, maps order-independent, ±0 folded).
//   - errors compare by identity, or by kind and message for two *Failure
//     values, and hash by FormatException, which both notions preserve.
//
// Payloads are expected to be acyclic; a cycle is cut at the first revisit.
package xgxresult

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const (
	tagOk byte = iota + 1
	tagErr
	tagSome
	tagNone
)

func hashOf(tag byte, payload any) uint64 {
	h := newHasher(nil)
	h.mark(tag)
	if err, ok := payload.(error); ok {
		h.str(FormatException(err))
	} else {
		h.value(reflect.ValueOf(payload))
	}
	return h.d.Sum64()
}

func valuesEqual(a, b any) bool {
	if ae, ok := a.(error); ok {
		be, ok := b.(error)
		return ok && errorsEqual(ae, be)
	}
	return reflect.DeepEqual(a, b)
}

func errorsEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, okA := a.(*Failure)
	fb, okB := b.(*Failure)
	if okA || okB {
		if !okA || !okB {
			return false
		}
		if fa == nil || fb == nil {
			return fa == fb
		}
		return fa.Is(fb)
	}
	t := reflect.TypeOf(a)
	return t == reflect.TypeOf(b) && t.Comparable() && a == b
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
	// references on the current path, to cut cycles
	seen map[ref]bool
}

type ref struct {
	p uintptr
	t reflect.Type
}

func newHasher(seen map[ref]bool) *hasher {
	if seen == nil {
		seen = map[ref]bool{}
	}
	return &hasher{d: xxhash.New(), seen: seen}
}

func (h *hasher) mark(b byte) { _, _ = h.d.Write([]byte{b}) }

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) float(f float64) {
	if f == 0 {
		f = 0
	}
	h.u64(math.Float64bits(f))
}

// enter reports whether v is not yet on the current path and pushes it.
func (h *hasher) enter(v reflect.Value) bool {
	r := ref{v.Pointer(), v.Type()}
	if h.seen[r] {
		h.mark(1)
		return false
	}
	h.seen[r] = true
	return true
}

func (h *hasher) leave(v reflect.Value) { delete(h.seen, ref{v.Pointer(), v.Type()}) }

func (h *hasher) value(v reflect.Value) {
	if !v.IsValid() {
		h.mark(0)
		return
	}
	h.str(v.Type().String())

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			h.mark(1)
		} else {
			h.mark(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.u64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.u64(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		h.float(real(c))
		h.float(imag(c))
	case reflect.String:
		h.str(v.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			h.value(v.Index(i))
		}
	case reflect.Slice:
		if v.IsNil() {
			h.mark(0)
			return
		}
		h.u64(uint64(v.Len()))
		if v.Len() == 0 || !h.enter(v) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			h.value(v.Index(i))
		}
		h.leave(v)
	case reflect.Map:
		if v.IsNil() {
			h.mark(0)
			return
		}
		h.u64(uint64(v.Len()))
		if !h.enter(v) {
			return
		}
		var sum uint64
		it := v.MapRange()
		for it.Next() {
			entry := newHasher(h.seen)
			entry.value(it.Key())
			entry.value(it.Value())
			sum += entry.d.Sum64()
		}
		h.leave(v)
		h.u64(sum)
	case reflect.Pointer:
		if v.IsNil() {
			h.mark(0)
			return
		}
		if !h.enter(v) {
			return
		}
		h.value(v.Elem())
		h.leave(v)
	case reflect.Interface:
		if v.IsNil() {
			h.mark(0)
			return
		}
		h.value(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			h.value(v.Field(i))
		}
	case reflect.Func:
		// Non-nil funcs are never DeepEqual.
		if v.IsNil() {
			h.mark(0)
		} else {
			h.mark(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		h.u64(uint64(v.Pointer()))
	}
}
