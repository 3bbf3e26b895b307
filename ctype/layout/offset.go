package layout

import (
	"fmt"

	"github.com/wippyai/winabi/ctype"
	"github.com/wippyai/winabi/errors"
)

// SizeOf returns sizeof(t) for the calculator's architecture.
func (c *Calculator) SizeOf(t *ctype.Type) (uintptr, error) {
	info, err := c.Calculate(t)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// OffsetOf returns the byte distance from the start of t to the member named
// by path, the same value offsetof(t, path) yields in C. Paths may descend
// into nested aggregates ("ptMaxSize.x") and index arrays ("rgrc[2]").
func (c *Calculator) OffsetOf(t *ctype.Type, path string) (uintptr, *ctype.Type, error) {
	segs, err := ctype.ParsePath(path)
	if err != nil {
		return 0, nil, errors.Wrap(errors.PhaseCatalog, errors.KindInvalidInput, err, t.String())
	}

	cur := t
	offset := uintptr(0)
	for _, seg := range segs {
		if !cur.Composite() {
			return 0, nil, errors.InvalidInput(errors.PhaseCatalog,
				fmt.Sprintf("%s: %s is not a struct or union", path, cur))
		}
		info, err := c.Calculate(cur)
		if err != nil {
			return 0, nil, err
		}
		f, ok := info.Fields[seg.Name]
		if !ok {
			return 0, nil, errors.FieldMissing(errors.PhaseCatalog, []string{t.String()}, cur.String(), seg.Name)
		}
		offset += f.Offset
		cur = f.Type

		if seg.Index < 0 {
			continue
		}
		if cur.Kind != ctype.KindArray {
			return 0, nil, errors.InvalidInput(errors.PhaseCatalog,
				fmt.Sprintf("%s: %s is not an array", path, seg.Name))
		}
		if seg.Index >= cur.Len {
			return 0, nil, errors.InvalidInput(errors.PhaseCatalog,
				fmt.Sprintf("%s: index %d out of range [0,%d)", path, seg.Index, cur.Len))
		}
		elem, err := c.Calculate(cur.Elem)
		if err != nil {
			return 0, nil, err
		}
		offset += elem.Size * uintptr(seg.Index)
		cur = cur.Elem
	}
	return offset, cur, nil
}

// ParamSize returns the width a parameter or return value of type t occupies.
// Function pointers are measured as an opaque handle and enums as their
// underlying integer: the Go side cannot describe either directly, so both
// sides compare through these stand-ins. A nil type is void and measures 0.
func (c *Calculator) ParamSize(t *ctype.Type) (uintptr, error) {
	if t == nil {
		return 0, nil
	}
	switch t.Kind {
	case ctype.KindFuncPtr:
		return c.arch.PtrSize(), nil
	case ctype.KindEnum:
		if t.Elem == nil {
			return ctype.Int32.Width, nil
		}
		return c.SizeOf(t.Elem)
	}
	return c.SizeOf(t)
}
