// context.go — ordered, immutable key/value context attached to failures.
//
// Design:
//   • Internal representation: append-only []Field, insertion order kept.
//   • Builders never alias: every append allocates a fresh backing array.
//   • Callers read a copy via Failure.Context().
package xgxresult

// Field is a single key/value pair attached to a Failure.
type Field struct {
	Key string
	Val any
}

type fields []Field

// appendFields returns a NEW slice holding dst followed by add.
func appendFields(dst fields, add ...Field) fields {
	if len(add) == 0 {
		return dst
	}
	out := make(fields, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// fieldsFromKV reads kv as (key, value) pairs. A non-string key drops the whole
// pair so later pairs stay aligned; a trailing key gets a nil value.
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// toMap copies fs into a map; later duplicates win.
func (fs fields) toMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
