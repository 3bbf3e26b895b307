package layout

import (
	"fmt"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/ctype"
	"github.com/wippyai/winabi/ctype/internal/abi"
	"github.com/wippyai/winabi/errors"
)

// Field is a member's placement inside its enclosing type.
type Field struct {
	Type   *ctype.Type
	Offset uintptr
}

// Info is the computed layout of a native type. Fields holds every member
// addressable by a single name, including members promoted from anonymous
// structs and unions.
type Info struct {
	Fields map[string]Field
	Order  []string
	Size   uintptr
	Align  uintptr
}

// Calculator lays out native types using MSVC rules for one architecture.
// It is not safe for concurrent use; create one per goroutine.
type Calculator struct {
	cache map[*ctype.Type]Info
	arch  winabi.Arch
}

func NewCalculator(arch winabi.Arch) *Calculator {
	return &Calculator{
		cache: make(map[*ctype.Type]Info),
		arch:  arch,
	}
}

// Arch returns the architecture the calculator lays out for.
func (c *Calculator) Arch() winabi.Arch {
	return c.arch
}

func (c *Calculator) Calculate(t *ctype.Type) (Info, error) {
	if t == nil {
		return Info{}, errors.InvalidInput(errors.PhaseCatalog, "nil type")
	}

	switch t.Kind {
	case ctype.KindInt, ctype.KindUint, ctype.KindFloat:
		// MSVC aligns 8-byte scalars to 8 on x86 as well; Go does not.
		return Info{Size: t.Width, Align: t.Width}, nil
	case ctype.KindPtrInt, ctype.KindPointer, ctype.KindHandle, ctype.KindFuncPtr:
		w := c.arch.PtrSize()
		return Info{Size: w, Align: w}, nil
	case ctype.KindEnum:
		return c.calculateEnum(t)
	}

	if cached, ok := c.cache[t]; ok {
		return cached, nil
	}

	var (
		info Info
		err  error
	)

	switch t.Kind {
	case ctype.KindArray:
		info, err = c.calculateArray(t)
	case ctype.KindStruct:
		info, err = c.calculateStruct(t)
	case ctype.KindUnion:
		info, err = c.calculateUnion(t)
	default:
		err = errors.Unsupported(errors.PhaseCatalog, "", fmt.Sprintf("%s has unknown kind %s", t, t.Kind))
	}
	if err != nil {
		return Info{}, err
	}

	c.cache[t] = info
	return info, nil
}

func (c *Calculator) calculateEnum(t *ctype.Type) (Info, error) {
	if t.Elem == nil {
		return c.Calculate(ctype.Int32)
	}
	switch t.Elem.Kind {
	case ctype.KindInt, ctype.KindUint:
		return c.Calculate(t.Elem)
	}
	return Info{}, errors.InvalidInput(errors.PhaseCatalog,
		fmt.Sprintf("enum %s has non-integer underlying type %s", t, t.Elem))
}

func (c *Calculator) calculateArray(t *ctype.Type) (Info, error) {
	elem, err := c.Calculate(t.Elem)
	if err != nil {
		return Info{}, err
	}
	size, ok := abi.SafeMul(elem.Size, uintptr(t.Len))
	if !ok || t.Len < 0 {
		return Info{}, errors.InvalidInput(errors.PhaseCatalog, fmt.Sprintf("array %s overflows", t))
	}
	return Info{Size: size, Align: elem.Align}, nil
}

func (c *Calculator) calculateStruct(t *ctype.Type) (Info, error) {
	if len(t.Fields) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	pack := t.PackFor(c.arch)
	info := Info{Fields: make(map[string]Field, len(t.Fields))}
	maxAlign := uintptr(1)
	offset := uintptr(0)

	for _, field := range t.Fields {
		fl, err := c.Calculate(field.Type)
		if err != nil {
			return Info{}, fmt.Errorf("%s.%s: %w", t, field.Name, err)
		}

		align := abi.Cap(fl.Align, pack)
		offset = abi.AlignTo(offset, align)
		if err := info.place(field, fl, offset); err != nil {
			return Info{}, fmt.Errorf("%s: %w", t, err)
		}

		if align > maxAlign {
			maxAlign = align
		}

		var ok bool
		if offset, ok = abi.SafeAdd(offset, fl.Size); !ok {
			return Info{}, errors.InvalidInput(errors.PhaseCatalog, fmt.Sprintf("struct %s overflows", t))
		}
	}

	info.Size = abi.AlignTo(offset, maxAlign)
	info.Align = maxAlign
	return info, nil
}

func (c *Calculator) calculateUnion(t *ctype.Type) (Info, error) {
	if len(t.Fields) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	pack := t.PackFor(c.arch)
	info := Info{Fields: make(map[string]Field, len(t.Fields))}
	maxAlign := uintptr(1)
	maxSize := uintptr(0)

	for _, field := range t.Fields {
		fl, err := c.Calculate(field.Type)
		if err != nil {
			return Info{}, fmt.Errorf("%s.%s: %w", t, field.Name, err)
		}
		if err := info.place(field, fl, 0); err != nil {
			return Info{}, fmt.Errorf("%s: %w", t, err)
		}
		if align := abi.Cap(fl.Align, pack); align > maxAlign {
			maxAlign = align
		}
		if fl.Size > maxSize {
			maxSize = fl.Size
		}
	}

	info.Size = abi.AlignTo(maxSize, maxAlign)
	info.Align = maxAlign
	return info, nil
}

// place records a member at offset, promoting the members of anonymous
// aggregates. Names must stay unique across the promoted set.
func (info *Info) place(field ctype.Field, fl Info, offset uintptr) error {
	if !field.Anonymous() {
		if _, dup := info.Fields[field.Name]; dup {
			return errors.Duplicate(errors.PhaseCatalog, "member", field.Name)
		}
		info.Fields[field.Name] = Field{Type: field.Type, Offset: offset}
		info.Order = append(info.Order, field.Name)
		return nil
	}
	if !field.Type.Composite() {
		return errors.InvalidInput(errors.PhaseCatalog,
			fmt.Sprintf("anonymous member of type %s is not a struct or union", field.Type))
	}
	for _, name := range fl.Order {
		inner := fl.Fields[name]
		if _, dup := info.Fields[name]; dup {
			return errors.Duplicate(errors.PhaseCatalog, "member", name)
		}
		info.Fields[name] = Field{Type: inner.Type, Offset: offset + inner.Offset}
		info.Order = append(info.Order, name)
	}
	return nil
}
