package gen

import "strconv"

// nameAllocator is a scoped name allocator: it reserves every field name of
// a struct up front, then hands out fresh temporaries ("list", "set", "m",
// ...) that are guaranteed not to collide with a reserved name, a Go
// keyword, or a temporary already handed out in the same scope. It mirrors
// JavaPoet's NameAllocator, which the original Thrifty generator used for
// exactly this purpose.
type nameAllocator struct {
	used map[string]bool
}

// goKeywords can never be handed out as temporaries, whatever a caller
// suggests.
var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}

func newNameAllocator() *nameAllocator {
	a := &nameAllocator{used: make(map[string]bool)}
	for _, kw := range goKeywords {
		a.used[kw] = true
	}
	return a
}

// reserve marks name as taken without returning a (possibly renamed) value;
// used to seed the allocator with a struct's field names before any
// temporaries are requested.
func (a *nameAllocator) reserve(name string) {
	a.used[name] = true
}

// newName returns a name based on suggestion that has not been handed out
// or reserved before, suffixing with an increasing integer if needed
// (list, list2, list3, ...).
func (a *nameAllocator) newName(suggestion string) string {
	if !a.used[suggestion] {
		a.used[suggestion] = true
		return suggestion
	}
	for i := 2; ; i++ {
		candidate := suggestion + strconv.Itoa(i)
		if !a.used[candidate] {
			a.used[candidate] = true
			return candidate
		}
	}
}
