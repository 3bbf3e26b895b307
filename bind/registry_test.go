package bind

import (
	"errors"
	"reflect"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	werrors "github.com/wippyai/winabi/errors"
)

var (
	tHWND   = reflect.TypeFor[HWND]()
	tUINT   = reflect.TypeFor[UINT]()
	tWPARAM = reflect.TypeFor[WPARAM]()
	tLPARAM = reflect.TypeFor[LPARAM]()
	tRect   = reflect.TypeFor[*Rect]()
)

func TestResolveOverloads(t *testing.T) {
	r := Default()

	imp, err := r.Resolve("SendMessageW", tHWND, tUINT, tWPARAM, tLPARAM)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(imp.Type, reflect.TypeFor[SendMessageWFunc]()))
	assert.Check(t, is.Equal(imp.DLL, User32))

	imp, err = r.Resolve("SendMessageW", tHWND, tUINT, tWPARAM, tRect)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(imp.Type, reflect.TypeFor[SendMessageRectFunc]()))

	assert.Check(t, is.Len(r.Overloads("SendMessageW"), 2))
}

func TestResolveErrors(t *testing.T) {
	r := NewRegistry()
	assert.NilError(t, r.Register(ImportOf[SendMessageWFunc](User32, "SendMessageW")))

	_, err := r.Resolve("SendMessageW", tHWND, tUINT)
	assert.Check(t, errors.Is(err, &werrors.Error{Phase: werrors.PhaseResolve, Kind: werrors.KindNotFound}))
	assert.ErrorContains(t, err, "SendMessageW(bind.HWND, bind.UINT)")

	_, err = r.Resolve("PostMessageW", tHWND, tUINT, tWPARAM, tLPARAM)
	assert.Check(t, errors.Is(err, &werrors.Error{Phase: werrors.PhaseResolve, Kind: werrors.KindNotFound}))

	assert.NilError(t, r.Register(ImportOf[SendMessageWFunc](User32, "SendMessageW")))
	_, err = r.Resolve("SendMessageW", tHWND, tUINT, tWPARAM, tLPARAM)
	assert.Check(t, errors.Is(err, &werrors.Error{Phase: werrors.PhaseResolve, Kind: werrors.KindAmbiguous}))
	assert.ErrorContains(t, err, "2 overloads")
}

func TestRegisterRejects(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name string
		imp  Import
		kind werrors.Kind
	}{
		{"no_dll", Import{Entry: "X", Type: reflect.TypeFor[func()]()}, werrors.KindInvalidInput},
		{"not_func", ImportOf[Rect](User32, "GetWindowRect"), werrors.KindInvalidInput},
		{"variadic", ImportOf[func(...uintptr) uintptr](User32, "wsprintfW"), werrors.KindUnsupported},
		{"two_results", ImportOf[func() (uintptr, error)](User32, "GetLastInputInfo"), werrors.KindUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Register(tc.imp)
			var e *werrors.Error
			assert.Assert(t, errors.As(err, &e))
			assert.Check(t, is.Equal(e.Kind, tc.kind))
		})
	}
	assert.Check(t, is.Len(r.Entries(), 0))
}

func TestImportSignature(t *testing.T) {
	imp := ImportOf[SetWindowPosFunc](User32, "SetWindowPos")
	params := imp.Params()
	assert.Assert(t, is.Len(params, 7))
	assert.Check(t, is.Equal(params[0], tHWND))
	assert.Check(t, is.Equal(params[6], tUINT))
	assert.Check(t, is.Equal(imp.Result(), reflect.TypeFor[BOOL]()))

	void := ImportOf[func(HWND)](User32, "DestroyCaret")
	assert.Check(t, is.Nil(void.Result()))
}

func TestDefaultEntries(t *testing.T) {
	entries := Default().Entries()
	assert.Check(t, is.Len(entries, len(builtinImports)-1))
	assert.Check(t, is.Contains(entries, "SHGetStockIconInfo"))
}
