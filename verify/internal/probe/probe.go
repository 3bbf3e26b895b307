package probe

import (
	"fmt"
	"reflect"

	"github.com/wippyai/winabi/ctype"
	"github.com/wippyai/winabi/errors"
)

// Overlayable reports an error when t, or any type nested inside it by
// value, cannot describe native memory. Pointer targets are not inspected.
func Overlayable(t reflect.Type) error {
	return overlayable(t, t.String())
}

func overlayable(t reflect.Type, where string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Pointer, reflect.UnsafePointer:
		return nil
	case reflect.Array:
		return overlayable(t.Elem(), where+"[]")
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if err := overlayable(f.Type, where+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Unsupported(errors.PhaseIntrospect, where,
		fmt.Sprintf("%s values have no native layout", t.Kind()))
}

var handleWidth = reflect.TypeFor[uintptr]().Size()

// Size returns the Go size of t on the host.
func Size(t reflect.Type) uintptr {
	return t.Size()
}

// Width returns the size a value of t occupies when passed to or returned
// from a native function. A nil t is void. A func-typed parameter or result
// is a callback and measures as a handle, the pointer width of the host.
func Width(t reflect.Type) (uintptr, error) {
	if t == nil {
		return 0, nil
	}
	if t.Kind() == reflect.Func {
		return handleWidth, nil
	}
	if err := Overlayable(t); err != nil {
		return 0, err
	}
	return t.Size(), nil
}

// Offset resolves a field path such as "Caps.Caps4" or "Rgrc[1].Left"
// against t and returns the byte offset and the type found there.
func Offset(t reflect.Type, path string) (uintptr, reflect.Type, error) {
	segs, err := ctype.ParsePath(path)
	if err != nil {
		return 0, nil, errors.Wrap(errors.PhaseIntrospect, errors.KindInvalidInput, err, "field path "+path)
	}

	var (
		off  uintptr
		cur  = t
		seen []string
	)
	for _, seg := range segs {
		if cur.Kind() != reflect.Struct {
			return 0, nil, errors.InvalidInput(errors.PhaseIntrospect,
				fmt.Sprintf("%s: %s is not a struct", path, cur))
		}
		f, ok := cur.FieldByName(seg.Name)
		if !ok {
			return 0, nil, errors.FieldMissing(errors.PhaseIntrospect, append(seen, seg.Name), t.String(), seg.Name)
		}
		fo, ok := fieldOffset(cur, f)
		if !ok {
			return 0, nil, errors.InvalidInput(errors.PhaseIntrospect,
				fmt.Sprintf("%s: %s is promoted through a pointer", path, seg.Name))
		}
		off += fo
		cur = f.Type
		seen = append(seen, seg.Name)

		if seg.Index < 0 {
			continue
		}
		if cur.Kind() != reflect.Array {
			return 0, nil, errors.InvalidInput(errors.PhaseIntrospect,
				fmt.Sprintf("%s: %s is not an array", path, cur))
		}
		if seg.Index >= cur.Len() {
			return 0, nil, errors.InvalidInput(errors.PhaseIntrospect,
				fmt.Sprintf("%s: index %d out of range [0:%d]", path, seg.Index, cur.Len()))
		}
		cur = cur.Elem()
		off += uintptr(seg.Index) * cur.Size()
	}
	return off, cur, nil
}

// fieldOffset sums offsets along the embedding chain of a promoted field.
// Fields reached through an embedded pointer live in other memory.
func fieldOffset(t reflect.Type, f reflect.StructField) (uintptr, bool) {
	if len(f.Index) == 1 {
		return f.Offset, true
	}
	var off uintptr
	cur := t
	for _, i := range f.Index {
		if cur.Kind() != reflect.Struct {
			return 0, false
		}
		sf := cur.Field(i)
		off += sf.Offset
		cur = sf.Type
	}
	return off, true
}
