package win32

import (
	"slices"
	"sync"

	"github.com/wippyai/winabi/ctype"
	"github.com/wippyai/winabi/errors"
)

// Catalog indexes native declarations by name.
type Catalog struct {
	structs map[string]*ctype.Type
	protos  map[string]*ctype.Proto
	mu      sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		structs: make(map[string]*ctype.Type),
		protos:  make(map[string]*ctype.Proto),
	}
}

// AddStruct registers a named struct or union.
func (c *Catalog) AddStruct(t *ctype.Type) error {
	if t == nil || t.Name == "" {
		return errors.InvalidInput(errors.PhaseCatalog, "struct declaration needs a name")
	}
	if !t.Composite() {
		return errors.InvalidInput(errors.PhaseCatalog, t.Name+" is not a struct or union")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.structs[t.Name]; ok {
		return errors.Duplicate(errors.PhaseCatalog, "struct", t.Name)
	}
	c.structs[t.Name] = t
	return nil
}

// AddProto registers a function prototype. Native exports are unique by
// name; overloading only exists on the Go side.
func (c *Catalog) AddProto(p *ctype.Proto) error {
	if p == nil || p.Name == "" {
		return errors.InvalidInput(errors.PhaseCatalog, "prototype needs a name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.protos[p.Name]; ok {
		return errors.Duplicate(errors.PhaseCatalog, "function", p.Name)
	}
	c.protos[p.Name] = p
	return nil
}

// Struct looks up a struct by its native name.
func (c *Catalog) Struct(name string) (*ctype.Type, error) {
	c.mu.RLock()
	t, ok := c.structs[name]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound(errors.PhaseCatalog, "struct", name)
	}
	return t, nil
}

// Proto looks up a function prototype by its export name.
func (c *Catalog) Proto(name string) (*ctype.Proto, error) {
	c.mu.RLock()
	p, ok := c.protos[name]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound(errors.PhaseCatalog, "function", name)
	}
	return p, nil
}

// StructNames returns the registered struct names in sorted order.
func (c *Catalog) StructNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.structs)
}

// ProtoNames returns the registered function names in sorted order.
func (c *Catalog) ProtoNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.protos)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var builtinStructs = []*ctype.Type{
	POINT, SIZE, RECT,
	MSG, MINMAXINFO, TRACKMOUSEEVENT, NMHDR, WINDOWPOS, NCCALCSIZE_PARAMS, WINDOWINFO,
	BITMAP, BITMAPINFOHEADER,
	HDITEMW,
	MEMORYSTATUSEX,
	OPENFILENAMEW,
	SHITEMID, ITEMIDLIST, BROWSEINFOW, DROPDESCRIPTION, SHDRAGIMAGE,
	SHFILEINFOW, SHSTOCKICONINFO,
	DDSCAPS2, DDCOLORKEY, DDPIXELFORMAT, DDSURFACEDESC2,
}

var builtinProtos = []*ctype.Proto{
	SendMessageW, CallNextHookEx, SetWindowsHookExW,
	GetWindowRect, GetWindowInfo, SetWindowPos, TrackMouseEvent,
	GetMessageW, DispatchMessageW,
	GlobalMemoryStatusEx,
	GetOpenFileNameW,
	SHGetFileInfoW, SHBrowseForFolderW, SHGetStockIconInfo,
}

// Default returns the catalog of every declaration in this package.
var Default = sync.OnceValue(func() *Catalog {
	c := NewCatalog()
	for _, t := range builtinStructs {
		if err := c.AddStruct(t); err != nil {
			panic(err)
		}
	}
	for _, p := range builtinProtos {
		if err := c.AddProto(p); err != nil {
			panic(err)
		}
	}
	return c
})
