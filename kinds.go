// kinds.go — failure kind taxonomy for xgx-result.
//
// Intent:
//   - A closed set of built-in kinds plus caller-defined kinds, all tagged by
//     a stable string.
//   - An explicit parent table models the kind hierarchy; matching a failure
//     against a set of kinds is a walk up that table.
//   - Two fixed groups (language-level, system-level) are never recoverable
//     under the default policy.
//
// Conventions:
//   - Kinds are lowercase snake_case ASCII.
//   - Every kind descends from KindAny. Kinds defined without a parent are
//     attached directly to KindAny.
package xgxresult

import (
	"fmt"
	"sync"
)

// Kind tags a failure with a machine-readable category.
type Kind string

// Root
const (
	KindAny Kind = "error"
)

// Language level: malformed programs.
const (
	KindAttribute  Kind = "attribute"
	KindImport     Kind = "import"
	KindName       Kind = "name"
	KindSyntax     Kind = "syntax"
	KindType       Kind = "type"
	KindNilPointer Kind = "nil_pointer"
)

// System level: resource exhaustion and runtime environment.
const (
	KindMemory Kind = "memory"
	KindSystem Kind = "system"
)

// Recoverable families
const (
	KindLookup         Kind = "lookup"
	KindIndex          Kind = "index"
	KindKey            Kind = "key"
	KindOS             Kind = "os"
	KindFileNotFound   Kind = "file_not_found"
	KindPermission     Kind = "permission"
	KindTimeout        Kind = "timeout"
	KindValue          Kind = "value"
	KindParse          Kind = "parse"
	KindRuntime        Kind = "runtime"
	KindNotImplemented Kind = "not_implemented"
	KindArithmetic     Kind = "arithmetic"
	KindZeroDivision   Kind = "zero_division"
)

// KindAssertion marks programming errors. Adapters never classify it.
const KindAssertion Kind = "assertion"

var languageLevelKinds = []Kind{
	KindAttribute,
	KindImport,
	KindName,
	KindSyntax,
	KindType,
	KindNilPointer,
}

var systemLevelKinds = []Kind{
	KindMemory,
	KindSystem,
}

// allBuiltinKinds is the ordered set of kinds the core ships with.
var allBuiltinKinds = []Kind{
	KindAny,

	KindAttribute,
	KindImport,
	KindName,
	KindSyntax,
	KindType,
	KindNilPointer,

	KindMemory,
	KindSystem,

	KindLookup,
	KindIndex,
	KindKey,
	KindOS,
	KindFileNotFound,
	KindPermission,
	KindTimeout,
	KindValue,
	KindParse,
	KindRuntime,
	KindNotImplemented,
	KindArithmetic,
	KindZeroDivision,

	KindAssertion,
}

// kindTable maps each kind to its parent. KindAny has no entry.
var kindTable = struct {
	mu     sync.RWMutex
	parent map[Kind]Kind
}{
	parent: map[Kind]Kind{
		KindAttribute:      KindAny,
		KindImport:         KindAny,
		KindName:           KindAny,
		KindSyntax:         KindAny,
		KindType:           KindAny,
		KindNilPointer:     KindAny,
		KindMemory:         KindAny,
		KindSystem:         KindAny,
		KindLookup:         KindAny,
		KindIndex:          KindLookup,
		KindKey:            KindLookup,
		KindOS:             KindAny,
		KindFileNotFound:   KindOS,
		KindPermission:     KindOS,
		KindTimeout:        KindOS,
		KindValue:          KindAny,
		KindParse:          KindValue,
		KindRuntime:        KindAny,
		KindNotImplemented: KindRuntime,
		KindArithmetic:     KindAny,
		KindZeroDivision:   KindArithmetic,
		KindAssertion:      KindAny,
	},
}

// BuiltinKinds returns a copy of the built-in kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// LanguageLevelKinds returns a copy of the kinds that denote malformed programs.
func LanguageLevelKinds() []Kind {
	out := make([]Kind, len(languageLevelKinds))
	copy(out, languageLevelKinds)
	return out
}

// SystemLevelKinds returns a copy of the kinds that denote resource exhaustion
// or runtime-internal errors.
func SystemLevelKinds() []Kind {
	out := make([]Kind, len(systemLevelKinds))
	copy(out, systemLevelKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in kinds.
func (k Kind) IsBuiltin() bool {
	for _, b := range allBuiltinKinds {
		if b == k {
			return true
		}
	}
	return false
}

// DefineKind registers kind as a child of parent. An empty parent attaches the
// kind to KindAny. Call it during program initialization; redefining a kind
// with a different parent, or creating a cycle, is a programming error.
func DefineKind(kind, parent Kind) Kind {
	if kind == "" || kind == KindAny {
		panic(newAssertion(fmt.Sprintf("cannot define kind %q", kind)))
	}
	if parent == "" {
		parent = KindAny
	}
	kindTable.mu.Lock()
	defer kindTable.mu.Unlock()

	if p, ok := kindTable.parent[kind]; ok {
		if p != parent {
			panic(newAssertion(fmt.Sprintf("kind %q already defined under %q", kind, p)))
		}
		return kind
	}
	for k := parent; k != KindAny; k = kindTable.parent[k] {
		if k == kind {
			panic(newAssertion(fmt.Sprintf("kind %q would be its own ancestor", kind)))
		}
		if _, ok := kindTable.parent[k]; !ok {
			break
		}
	}
	kindTable.parent[kind] = parent
	return kind
}

// Parent returns the kind k descends from. KindAny is its own parent; unknown
// kinds report KindAny.
func (k Kind) Parent() Kind {
	kindTable.mu.RLock()
	defer kindTable.mu.RUnlock()
	if p, ok := kindTable.parent[k]; ok {
		return p
	}
	return KindAny
}

// Is reports whether k equals target or descends from it.
func (k Kind) Is(target Kind) bool {
	if target == KindAny || k == target {
		return true
	}
	kindTable.mu.RLock()
	defer kindTable.mu.RUnlock()
	for cur := k; ; {
		p, ok := kindTable.parent[cur]
		if !ok {
			return false
		}
		if p == target {
			return true
		}
		cur = p
	}
}

// matchesAny reports whether k descends from any of set.
func (k Kind) matchesAny(set []Kind) bool {
	for _, s := range set {
		if k.Is(s) {
			return true
		}
	}
	return false
}

// Defined reports whether k is KindAny, a built-in, or registered with
// DefineKind.
func (k Kind) Defined() bool {
	if k == KindAny {
		return true
	}
	kindTable.mu.RLock()
	defer kindTable.mu.RUnlock()
	_, ok := kindTable.parent[k]
	return ok
}
