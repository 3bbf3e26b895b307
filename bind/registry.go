package bind

import (
	"reflect"
	"slices"
	"sync"

	"github.com/wippyai/winabi/errors"
)

const (
	User32   = "user32.dll"
	Kernel32 = "kernel32.dll"
	Shell32  = "shell32.dll"
	Comdlg32 = "comdlg32.dll"
)

// Import is one Go declaration of a DLL export. Type is the declaring func
// type.
type Import struct {
	Type  reflect.Type
	DLL   string
	Entry string
}

// ImportOf declares that entry in dll is called through F.
func ImportOf[F any](dll, entry string) Import {
	return Import{DLL: dll, Entry: entry, Type: reflect.TypeFor[F]()}
}

// Params returns the declared parameter types in order.
func (imp Import) Params() []reflect.Type {
	params := make([]reflect.Type, imp.Type.NumIn())
	for i := range params {
		params[i] = imp.Type.In(i)
	}
	return params
}

// Result returns the declared return type, or nil for void.
func (imp Import) Result() reflect.Type {
	if imp.Type.NumOut() == 0 {
		return nil
	}
	return imp.Type.Out(0)
}

func (imp Import) String() string {
	return imp.DLL + "!" + imp.Entry + " " + imp.Type.String()
}

// Registry holds import declarations keyed by entry point. An entry may be
// declared more than once with different parameter lists.
type Registry struct {
	imports map[string][]Import
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{imports: make(map[string][]Import)}
}

// Register adds a declaration. Identical declarations are kept; resolving
// them reports the entry as ambiguous.
func (r *Registry) Register(imp Import) error {
	if imp.Entry == "" || imp.DLL == "" {
		return errors.InvalidInput(errors.PhaseResolve, "import needs a DLL and an entry point")
	}
	if imp.Type == nil || imp.Type.Kind() != reflect.Func {
		return errors.InvalidInput(errors.PhaseResolve, "import "+imp.Entry+" is not declared by a func type")
	}
	if imp.Type.IsVariadic() || imp.Type.NumOut() > 1 {
		return errors.Unsupported(errors.PhaseResolve, imp.Type.String(), "imports take fixed parameters and return at most one value")
	}

	r.mu.Lock()
	r.imports[imp.Entry] = append(r.imports[imp.Entry], imp)
	r.mu.Unlock()
	return nil
}

// Overloads returns every declaration of entry in registration order.
func (r *Registry) Overloads(entry string) []Import {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.imports[entry])
}

// Entries returns the declared entry points in sorted order.
func (r *Registry) Entries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]string, 0, len(r.imports))
	for entry := range r.imports {
		entries = append(entries, entry)
	}
	slices.Sort(entries)
	return entries
}

// Resolve finds the declaration of entry whose parameter types equal params
// exactly.
func (r *Registry) Resolve(entry string, params ...reflect.Type) (Import, error) {
	var matches []Import
	for _, imp := range r.Overloads(entry) {
		if slices.Equal(imp.Params(), params) {
			matches = append(matches, imp)
		}
	}

	switch len(matches) {
	case 0:
		return Import{}, errors.NotFound(errors.PhaseResolve, "declaration", signature(entry, params))
	case 1:
		return matches[0], nil
	default:
		return Import{}, errors.Ambiguous(signature(entry, params), len(matches))
	}
}

func signature(entry string, params []reflect.Type) string {
	s := entry + "("
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ")"
}

var builtinImports = []Import{
	ImportOf[SendMessageWFunc](User32, "SendMessageW"),
	ImportOf[SendMessageRectFunc](User32, "SendMessageW"),
	ImportOf[CallNextHookExFunc](User32, "CallNextHookEx"),
	ImportOf[SetWindowsHookExWFunc](User32, "SetWindowsHookExW"),
	ImportOf[GetWindowRectFunc](User32, "GetWindowRect"),
	ImportOf[GetWindowInfoFunc](User32, "GetWindowInfo"),
	ImportOf[SetWindowPosFunc](User32, "SetWindowPos"),
	ImportOf[TrackMouseEventFunc](User32, "TrackMouseEvent"),
	ImportOf[GetMessageWFunc](User32, "GetMessageW"),
	ImportOf[DispatchMessageWFunc](User32, "DispatchMessageW"),
	ImportOf[GlobalMemoryStatusFunc](Kernel32, "GlobalMemoryStatusEx"),
	ImportOf[GetOpenFileNameWFunc](Comdlg32, "GetOpenFileNameW"),
	ImportOf[SHGetFileInfoWFunc](Shell32, "SHGetFileInfoW"),
	ImportOf[SHBrowseForFolderWFunc](Shell32, "SHBrowseForFolderW"),
	ImportOf[SHGetStockIconInfoFunc](Shell32, "SHGetStockIconInfo"),
}

// Default returns the registry of every import this package declares.
var Default = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, imp := range builtinImports {
		if err := r.Register(imp); err != nil {
			panic(err)
		}
	}
	return r
})
