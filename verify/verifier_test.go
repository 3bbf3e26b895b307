package verify

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/bind"
	"github.com/wippyai/winabi/ctype"
	werrors "github.com/wippyai/winabi/errors"
	"github.com/wippyai/winabi/win32"
)

// recorder captures what a verifier reports instead of failing the test.
type recorder struct {
	errs  []string
	skips []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Skipf(format string, args ...any) {
	r.skips = append(r.skips, fmt.Sprintf(format, args...))
}

func hostArch(t *testing.T) winabi.Arch {
	t.Helper()
	host, ok := winabi.HostArch()
	if !ok {
		t.Skip("host architecture is not modeled")
	}
	return host
}

func otherArch(host winabi.Arch) winabi.Arch {
	if host == winabi.Arch386 {
		return winabi.ArchAMD64
	}
	return winabi.Arch386
}

func isErr(err error, phase werrors.Phase, kind werrors.Kind) is.Comparison {
	return func() is.Result {
		if errors.Is(err, &werrors.Error{Phase: phase, Kind: kind}) {
			return is.ResultSuccess
		}
		return is.ResultFailure(fmt.Sprintf("error %v is not [%s] %s", err, phase, kind))
	}
}

func testCatalog(t *testing.T, types ...*ctype.Type) *win32.Catalog {
	t.Helper()
	c := win32.NewCatalog()
	for _, ty := range types {
		assert.NilError(t, c.AddStruct(ty))
	}
	return c
}

func TestCheckStructBuiltin(t *testing.T) {
	hostArch(t)
	for _, name := range []string{"POINT", "RECT", "MSG", "NCCALCSIZE_PARAMS", "BITMAPINFO_FLAT"} {
		t.Run(name, func(t *testing.T) {
			c := caseNamed(t, name)
			rec := &recorder{}
			CheckStruct(rec, c)
			assert.Check(t, is.Len(rec.errs, 0))
			assert.Check(t, is.Len(rec.skips, 0))
		})
	}
}

func caseNamed(t *testing.T, name string) StructCase {
	t.Helper()
	for _, c := range Cases() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no struct case %q", name)
	return StructCase{}
}

func TestEvaluateStructRename(t *testing.T) {
	hostArch(t)
	r := New().EvaluateStruct(caseNamed(t, "MSG"))
	assert.NilError(t, r.Err)
	assert.Check(t, !r.Failed())

	var whats []string
	for _, c := range r.Checks {
		whats = append(whats, c.What)
	}
	assert.Check(t, is.Contains(whats, "hwnd -> HWnd"))
	assert.Check(t, is.Contains(whats, "message -> Msg"))
	assert.Check(t, is.Contains(whats, "time"))
}

func TestEvaluateStructMismatch(t *testing.T) {
	hostArch(t)
	pair := ctype.Struct("PAIR",
		ctype.F("a", ctype.Int32),
		ctype.F("b", ctype.Int64),
		ctype.F("c", ctype.Int32),
	)
	type narrowPair struct {
		A int32
		B int32
		C int32
	}

	v := New(WithCatalog(testCatalog(t, pair)))
	c := StructCase{
		Name: "PAIR", Native: "PAIR", Candidate: reflect.TypeFor[narrowPair](),
		Fields: Same("a", "b", "c"),
	}
	r := v.EvaluateStruct(c)
	assert.NilError(t, r.Err)
	assert.Check(t, r.Failed())

	failures := r.Failures()
	assert.Assert(t, is.Len(failures, 3))

	assert.Check(t, is.Equal(failures[0].Subject, SubjectSize))
	assert.Check(t, is.Equal(failures[0].Expected, uintptr(24)))
	assert.Check(t, is.Equal(failures[0].Actual, uintptr(12)))
	assert.Check(t, isErr(failures[0].Failure(), werrors.PhaseLayout, werrors.KindSizeMismatch))

	assert.Check(t, is.Equal(failures[1].What, "b"))
	assert.Check(t, is.Equal(failures[1].Expected, uintptr(8)))
	assert.Check(t, is.Equal(failures[1].Actual, uintptr(4)))
	assert.Check(t, isErr(failures[1].Failure(), werrors.PhaseLayout, werrors.KindOffsetMismatch))

	// c is reported independently of b.
	assert.Check(t, is.Equal(failures[2].What, "c"))
	assert.Check(t, is.Equal(failures[2].Expected, uintptr(16)))
	assert.Check(t, is.Equal(failures[2].Actual, uintptr(8)))

	rec := &recorder{}
	v.CheckStruct(rec, c)
	assert.Check(t, is.Len(rec.errs, 3))
	assert.Check(t, is.Contains(rec.errs[1], "offset_mismatch at b"))
}

func TestEvaluateStructUnionAndArray(t *testing.T) {
	hostArch(t)
	native := ctype.Struct("PACKED_VALUES",
		ctype.F("kind", ctype.Uint32),
		ctype.Anon(ctype.Union("",
			ctype.F("count", ctype.Uint32),
			ctype.F("depth", ctype.Int32),
		)),
		ctype.F("rgn", ctype.Array(ctype.Int32, 3)),
	)
	type candidate struct {
		Kind  uint32
		Count uint32
		Rgn0  int32
		Rgn1  int32
		Rgn2  int32
	}

	v := New(WithCatalog(testCatalog(t, native)))
	r := v.EvaluateStruct(StructCase{
		Name: "PACKED_VALUES", Native: "PACKED_VALUES", Candidate: reflect.TypeFor[candidate](),
		Fields: []FieldMap{
			Map("kind", "Kind"),
			Map("count", "Count"),
			Map("depth", "Count"),
			Map("rgn[0]", "Rgn0"),
			Map("rgn[1]", "Rgn1"),
			Map("rgn[2]", "Rgn2"),
		},
	})
	assert.NilError(t, r.Err)
	assert.Check(t, !r.Failed(), "failures: %v", r.Failures())
	assert.Check(t, is.Len(r.Checks, 7))
}

func TestEvaluateStructHeaderOnly(t *testing.T) {
	hostArch(t)
	native := ctype.Struct("TAGGED",
		ctype.F("cb", ctype.Uint16),
		ctype.F("ab", ctype.Array(ctype.Uint8, 1)),
	).WithPack(1, winabi.Arches...)
	type candidate struct {
		Cb uint16
		Ab [1]uint8
		_  uint8
	}

	v := New(WithCatalog(testCatalog(t, native)))
	c := StructCase{
		Name: "TAGGED", Native: "TAGGED", Candidate: reflect.TypeFor[candidate](),
		Fields: Same("cb", "ab"),
	}

	r := v.EvaluateStruct(c)
	assert.Check(t, r.Failed())
	assert.Check(t, is.Equal(r.Failures()[0].Subject, SubjectSize))

	c.HeaderOnly = true
	r = v.EvaluateStruct(c)
	assert.Check(t, !r.Failed(), "failures: %v", r.Failures())
	assert.Check(t, is.Len(r.Checks, 2))
}

func TestEvaluateStructFieldMissing(t *testing.T) {
	hostArch(t)
	r := New().EvaluateStruct(StructCase{
		Name: "POINT", Native: "POINT", Candidate: reflect.TypeFor[bind.Point](),
		Fields: []FieldMap{Map("x", "Left"), Map("z", "X"), Map("y", "Y")},
	})
	assert.NilError(t, r.Err)

	failures := r.Failures()
	assert.Assert(t, is.Len(failures, 2))
	assert.Check(t, isErr(failures[0].Err, werrors.PhaseIntrospect, werrors.KindFieldMissing))
	assert.Check(t, isErr(failures[1].Err, werrors.PhaseCatalog, werrors.KindFieldMissing))
	assert.Check(t, is.Equal(r.Checks[len(r.Checks)-1].What, "y"))
	assert.Check(t, r.Checks[len(r.Checks)-1].Passed())
}

func TestEvaluateStructNotEvaluated(t *testing.T) {
	hostArch(t)
	type withString struct {
		X int32
		S string
	}

	tests := []struct {
		name  string
		c     StructCase
		phase werrors.Phase
		kind  werrors.Kind
	}{
		{
			name:  "unknown native",
			c:     StructCase{Name: "NOPE", Native: "NOPE", Candidate: reflect.TypeFor[bind.Point]()},
			phase: werrors.PhaseCatalog,
			kind:  werrors.KindNotFound,
		},
		{
			name:  "no candidate",
			c:     StructCase{Name: "POINT", Native: "POINT"},
			phase: werrors.PhaseIntrospect,
			kind:  werrors.KindInvalidInput,
		},
		{
			name:  "unsupported candidate",
			c:     StructCase{Name: "POINT", Native: "POINT", Candidate: reflect.TypeFor[withString](), Fields: Same("x")},
			phase: werrors.PhaseIntrospect,
			kind:  werrors.KindUnsupported,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New().EvaluateStruct(tt.c)
			assert.Check(t, isErr(r.Err, tt.phase, tt.kind))
			assert.Check(t, r.Failed())
			assert.Check(t, is.Len(r.Checks, 0))

			rec := &recorder{}
			New().CheckStruct(rec, tt.c)
			assert.Check(t, is.Len(rec.errs, 1))
		})
	}
}

func TestArchSelection(t *testing.T) {
	host := hostArch(t)
	other := otherArch(host)

	c := caseNamed(t, "POINT")
	c.Arches = []winabi.Arch{other}
	r := New().EvaluateStruct(c)
	assert.Check(t, r.Skipped)
	assert.Check(t, !r.Failed())
	assert.Check(t, is.Contains(r.SkipReason, "does not apply to "+host.String()))

	rec := &recorder{}
	CheckStruct(rec, c)
	assert.Check(t, is.Len(rec.skips, 1))
	assert.Check(t, is.Len(rec.errs, 0))

	r = New(WithArch(other)).EvaluateStruct(caseNamed(t, "POINT"))
	assert.Check(t, isErr(r.Err, werrors.PhaseIntrospect, werrors.KindInvalidInput))
	assert.Check(t, is.Equal(r.Arch, other))

	f := FuncCase{Name: "GetWindowRect", Native: "GetWindowRect", Arches: []winabi.Arch{other}}
	assert.Check(t, New().EvaluateFunc(f).Skipped)
}

func TestDirectDrawCases(t *testing.T) {
	host := hostArch(t)
	for _, c := range Cases() {
		if len(c.Arches) == 0 {
			continue
		}
		r := New().EvaluateStruct(c)
		if host == winabi.Arch386 {
			assert.Check(t, !r.Failed(), "%s: %v", c.Name, r.Failures())
		} else {
			assert.Check(t, r.Skipped, c.Name)
		}
	}
}

func funcCaseNamed(t *testing.T, name string) FuncCase {
	t.Helper()
	for _, c := range FuncCases() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no function case %q", name)
	return FuncCase{}
}

func TestEvaluateFuncWidths(t *testing.T) {
	host := hostArch(t)
	ptr := host.PtrSize()

	r := New().EvaluateFunc(funcCaseNamed(t, "SendMessageW"))
	assert.NilError(t, r.Err)
	assert.Check(t, !r.Failed(), "failures: %v", r.Failures())

	got := make([]uintptr, len(r.Checks))
	for i, c := range r.Checks {
		got[i] = c.Actual
	}
	assert.Check(t, is.DeepEqual(got, []uintptr{ptr, ptr, 4, ptr, ptr}))
	assert.Check(t, is.Equal(r.Checks[0].Subject, SubjectReturn))
	assert.Check(t, is.Equal(r.Checks[2].What, "1 (Msg UINT)"))

	r = New().EvaluateFunc(funcCaseNamed(t, "SendMessageW(RECT*)"))
	assert.NilError(t, r.Err)
	assert.Check(t, !r.Failed(), "failures: %v", r.Failures())

	r = New().EvaluateFunc(funcCaseNamed(t, "DispatchMessageW"))
	assert.NilError(t, r.Err)
	assert.Check(t, is.Len(r.Checks, 2))
}

type narrowSendMessage func(hwnd bind.HWND, msg bind.UINT, wparam bind.UINT, lparam bind.LPARAM) bind.LRESULT

type shortSendMessage func(hwnd bind.HWND, msg bind.UINT, wparam bind.WPARAM) bind.LRESULT

func TestEvaluateFuncMismatch(t *testing.T) {
	host := hostArch(t)

	reg := bind.NewRegistry()
	assert.NilError(t, reg.Register(bind.ImportOf[narrowSendMessage](bind.User32, "SendMessageW")))
	assert.NilError(t, reg.Register(bind.ImportOf[shortSendMessage](bind.User32, "SendMessageW")))
	v := New(WithRegistry(reg))

	t.Run("width", func(t *testing.T) {
		if host.PtrSize() != 8 {
			t.Skip("WPARAM and UINT have the same width on 32-bit targets")
		}
		r := v.EvaluateFunc(FuncCase{
			Name: "narrow", Native: "SendMessageW",
			Params: params(bind.HWND(0), bind.UINT(0), bind.UINT(0), bind.LPARAM(0)),
		})
		assert.NilError(t, r.Err)
		failures := r.Failures()
		assert.Assert(t, is.Len(failures, 1))
		assert.Check(t, is.Equal(failures[0].What, "2 (wParam WPARAM)"))
		assert.Check(t, is.Equal(failures[0].Expected, uintptr(8)))
		assert.Check(t, is.Equal(failures[0].Actual, uintptr(4)))
		assert.Check(t, isErr(failures[0].Failure(), werrors.PhaseSignature, werrors.KindSizeMismatch))
	})

	t.Run("count", func(t *testing.T) {
		r := v.EvaluateFunc(FuncCase{
			Name: "short", Native: "SendMessageW",
			Params: params(bind.HWND(0), bind.UINT(0), bind.WPARAM(0)),
		})
		assert.NilError(t, r.Err)
		failures := r.Failures()
		assert.Assert(t, is.Len(failures, 1))
		assert.Check(t, is.Equal(failures[0].Subject, SubjectParamCount))
		assert.Check(t, is.ErrorContains(failures[0].Failure(), "3 parameters, want 4"))
		// return plus the three shared parameters
		assert.Check(t, is.Len(r.Checks, 5))
	})
}

func TestEvaluateFuncResolveErrors(t *testing.T) {
	hostArch(t)

	r := New().EvaluateFunc(FuncCase{
		Name: "SendMessageW(int)", Native: "SendMessageW",
		Params: params(bind.HWND(0), bind.INT(0)),
	})
	assert.Check(t, isErr(r.Err, werrors.PhaseResolve, werrors.KindNotFound))

	reg := bind.NewRegistry()
	imp := bind.ImportOf[bind.GetWindowRectFunc](bind.User32, "GetWindowRect")
	assert.NilError(t, reg.Register(imp))
	assert.NilError(t, reg.Register(imp))
	r = New(WithRegistry(reg)).EvaluateFunc(funcCaseNamed(t, "GetWindowRect"))
	assert.Check(t, isErr(r.Err, werrors.PhaseResolve, werrors.KindAmbiguous))

	r = New().EvaluateFunc(FuncCase{Name: "PostMessageW", Native: "PostMessageW"})
	assert.Check(t, isErr(r.Err, werrors.PhaseCatalog, werrors.KindNotFound))
}

func TestCheckString(t *testing.T) {
	c := Check{Subject: SubjectOffset, What: "hwnd -> HWnd", Expected: 0, Actual: 8}
	assert.Check(t, is.Equal(c.String(), "offset hwnd -> HWnd: got 8, want 0"))
	assert.Check(t, is.ErrorContains(c.Failure(), "offset 8, want 0"))

	c.Actual = 0
	assert.Check(t, c.Failure() == nil)
}

type hookWithCallback func(idHook bind.INT, lpfn func(code int32, wparam, lparam uintptr) uintptr, hmod bind.HINSTANCE, threadID bind.DWORD) bind.HHOOK

func TestEvaluateFuncCallbackParam(t *testing.T) {
	host := hostArch(t)

	reg := bind.NewRegistry()
	assert.NilError(t, reg.Register(bind.ImportOf[hookWithCallback](bind.User32, "SetWindowsHookExW")))

	callback := reflect.TypeFor[hookWithCallback]().In(1)
	r := New(WithRegistry(reg)).EvaluateFunc(FuncCase{
		Name: "SetWindowsHookExW(func)", Native: "SetWindowsHookExW",
		Params: []reflect.Type{typeOf[bind.INT](), callback, typeOf[bind.HINSTANCE](), typeOf[bind.DWORD]()},
	})
	assert.NilError(t, r.Err)
	assert.Check(t, !r.Failed(), "failures: %v", r.Failures())

	lpfn := r.Checks[2]
	assert.Check(t, is.Equal(lpfn.What, "1 (lpfn HOOKPROC)"))
	assert.Check(t, is.Equal(lpfn.Actual, host.PtrSize()))
}

func TestEvaluateStructFuncField(t *testing.T) {
	hostArch(t)
	type withCallback struct {
		X  int32
		Fn func()
	}
	r := New().EvaluateStruct(StructCase{
		Name: "POINT", Native: "POINT", Candidate: reflect.TypeFor[withCallback](), Fields: Same("x"),
	})
	assert.Check(t, isErr(r.Err, werrors.PhaseIntrospect, werrors.KindUnsupported))
}

func TestSizeFailureNamesGoType(t *testing.T) {
	hostArch(t)
	r := New().EvaluateStruct(StructCase{
		Name: "RECT", Native: "RECT", Candidate: reflect.TypeFor[bind.Point](),
		Fields: Same("left"),
	})
	failures := r.Failures()
	assert.Assert(t, len(failures) > 0)
	assert.Check(t, is.Equal(failures[0].Subject, SubjectSize))

	var e *werrors.Error
	assert.Assert(t, errors.As(failures[0].Failure(), &e))
	assert.Check(t, is.Equal(e.GoType, "bind.Point"))
	assert.Check(t, is.Equal(e.NativeType, "RECT"))
	assert.Check(t, is.Equal(e.Expected, uintptr(16)))
	assert.Check(t, is.Equal(e.Actual, uintptr(8)))
}

func TestEvaluateStructComparesNothing(t *testing.T) {
	hostArch(t)
	r := New().EvaluateStruct(StructCase{
		Name: "RECT", Native: "RECT", Candidate: reflect.TypeFor[bind.Point](), HeaderOnly: true,
	})
	assert.Check(t, isErr(r.Err, werrors.PhaseLayout, werrors.KindInvalidInput))
	assert.Check(t, r.Failed())
}
