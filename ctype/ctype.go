package ctype

import (
	"strconv"

	"github.com/wippyai/winabi"
)

// Kind classifies a native type by how the MSVC ABI lays it out.
type Kind uint8

const (
	KindInt     Kind = iota // signed fixed-width integer
	KindUint                // unsigned fixed-width integer
	KindFloat               // IEEE float
	KindPtrInt              // pointer-sized integer (WPARAM, LPARAM, UINT_PTR)
	KindPointer             // data pointer
	KindHandle              // opaque handle, pointer-sized
	KindFuncPtr             // function pointer (callbacks)
	KindEnum                // C enum, laid out as its underlying integer
	KindArray
	KindStruct
	KindUnion
)

var kindNames = [...]string{
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat:   "float",
	KindPtrInt:  "ptrint",
	KindPointer: "pointer",
	KindHandle:  "handle",
	KindFuncPtr: "funcptr",
	KindEnum:    "enum",
	KindArray:   "array",
	KindStruct:  "struct",
	KindUnion:   "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Type is a native type declaration. Scalars carry a fixed Width; pointer-sized
// kinds take their width from the target architecture.
type Type struct {
	Elem   *Type // array element, pointer target, enum underlying type
	Pack   map[winabi.Arch]uintptr
	Name   string
	Fields []Field
	Width  uintptr
	Len    int
	Kind   Kind
}

// Field is a struct or union member. An empty Name marks an anonymous
// struct or union whose members are addressable from the enclosing type.
type Field struct {
	Type *Type
	Name string
}

// Anonymous reports whether the member's own fields are promoted.
func (f Field) Anonymous() bool {
	return f.Name == ""
}

// String returns the declared name, or a C-like spelling for unnamed types.
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case KindArray:
		return t.Elem.String() + "[" + strconv.Itoa(t.Len) + "]"
	case KindPointer:
		if t.Elem == nil {
			return "void*"
		}
		return t.Elem.String() + "*"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	}
	return t.Kind.String()
}

// Composite reports whether the type has named members.
func (t *Type) Composite() bool {
	return t.Kind == KindStruct || t.Kind == KindUnion
}

// PackFor returns the #pragma pack value in effect for arch, or 0 for natural
// alignment.
func (t *Type) PackFor(arch winabi.Arch) uintptr {
	if t.Pack == nil {
		return 0
	}
	return t.Pack[arch]
}

// WithPack sets the packing used when the header is compiled for arch.
func (t *Type) WithPack(n uintptr, arches ...winabi.Arch) *Type {
	if t.Pack == nil {
		t.Pack = make(map[winabi.Arch]uintptr, len(arches))
	}
	for _, a := range arches {
		t.Pack[a] = n
	}
	return t
}

var (
	Int8    = &Type{Name: "int8", Kind: KindInt, Width: 1}
	Int16   = &Type{Name: "int16", Kind: KindInt, Width: 2}
	Int32   = &Type{Name: "int32", Kind: KindInt, Width: 4}
	Int64   = &Type{Name: "int64", Kind: KindInt, Width: 8}
	Uint8   = &Type{Name: "uint8", Kind: KindUint, Width: 1}
	Uint16  = &Type{Name: "uint16", Kind: KindUint, Width: 2}
	Uint32  = &Type{Name: "uint32", Kind: KindUint, Width: 4}
	Uint64  = &Type{Name: "uint64", Kind: KindUint, Width: 8}
	Float32 = &Type{Name: "float", Kind: KindFloat, Width: 4}
	Float64 = &Type{Name: "double", Kind: KindFloat, Width: 8}
	IntPtr  = &Type{Name: "intptr", Kind: KindPtrInt}
	UintPtr = &Type{Name: "uintptr", Kind: KindPtrInt}
	VoidPtr = &Type{Name: "void*", Kind: KindPointer}
)

// Typedef returns a copy of base under a new name.
func Typedef(name string, base *Type) *Type {
	t := *base
	t.Name = name
	return &t
}

// Pointer declares a data pointer to elem.
func Pointer(elem *Type) *Type {
	return &Type{Kind: KindPointer, Elem: elem}
}

// Handle declares an opaque handle type such as HWND.
func Handle(name string) *Type {
	return &Type{Name: name, Kind: KindHandle}
}

// FuncPtr declares a callback type such as HOOKPROC.
func FuncPtr(name string) *Type {
	return &Type{Name: name, Kind: KindFuncPtr}
}

// Enum declares an enum with the given underlying integer. MSVC enums are int
// unless declared otherwise, so a nil underlying type means Int32.
func Enum(name string, underlying *Type) *Type {
	if underlying == nil {
		underlying = Int32
	}
	return &Type{Name: name, Kind: KindEnum, Elem: underlying}
}

// Array declares a fixed-length array.
func Array(elem *Type, n int) *Type {
	return &Type{Kind: KindArray, Elem: elem, Len: n}
}

// Struct declares a structure with members in declaration order.
func Struct(name string, fields ...Field) *Type {
	return &Type{Name: name, Kind: KindStruct, Fields: fields}
}

// Union declares a union; every member starts at offset zero.
func Union(name string, fields ...Field) *Type {
	return &Type{Name: name, Kind: KindUnion, Fields: fields}
}

// F declares a named member.
func F(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

// Anon declares an anonymous struct or union member.
func Anon(t *Type) Field {
	return Field{Type: t}
}

// Param is a function parameter.
type Param struct {
	Type *Type
	Name string
}

// P declares a parameter.
func P(name string, t *Type) Param {
	return Param{Name: name, Type: t}
}

// Proto is a native function prototype. A nil Return means void.
type Proto struct {
	Return *Type
	Name   string
	DLL    string
	Params []Param
}

// Func declares a prototype exported by dll.
func Func(dll, name string, ret *Type, params ...Param) *Proto {
	return &Proto{DLL: dll, Name: name, Return: ret, Params: params}
}
