package verify

import (
	"context"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/bind"
	"github.com/wippyai/winabi/ctype/layout"
	werrors "github.com/wippyai/winabi/errors"
	"github.com/wippyai/winabi/win32"
)

func TestStructCases(t *testing.T) {
	hostArch(t)
	v := New()
	for _, c := range Cases() {
		t.Run(c.Name, func(t *testing.T) {
			v.CheckStruct(t, c)
		})
	}
}

func TestFuncCases(t *testing.T) {
	hostArch(t)
	v := New()
	for _, c := range FuncCases() {
		t.Run(c.Name, func(t *testing.T) {
			v.CheckFunc(t, c)
		})
	}
}

func TestCasesAreCopies(t *testing.T) {
	cases := Cases()
	cases[0].Name = "changed"
	assert.Check(t, is.Equal(Cases()[0].Name, "POINT"))

	funcs := FuncCases()
	funcs[0].Name = "changed"
	assert.Check(t, is.Equal(FuncCases()[0].Name, "SendMessageW"))
}

func TestValidate(t *testing.T) {
	point := StructCase{Name: "POINT", Native: "POINT", Fields: Same("x", "y")}

	assert.NilError(t, validate(structCases, funcCases))

	err := validate([]StructCase{point, point}, nil)
	assert.Check(t, isErr(err, werrors.PhaseLayout, werrors.KindDuplicate))
	assert.Check(t, is.ErrorContains(err, `case "POINT"`))

	twice := point
	twice.Fields = []FieldMap{Map("x", "X"), Map("x", "Y")}
	err = validate([]StructCase{twice}, nil)
	assert.Check(t, isErr(err, werrors.PhaseLayout, werrors.KindDuplicate))
	assert.Check(t, is.ErrorContains(err, "POINT.x"))

	shared := point
	shared.Fields = []FieldMap{Map("x", "X"), Map("y", "X")}
	assert.Check(t, validate([]StructCase{shared}, nil))

	empty := point
	empty.HeaderOnly, empty.Fields = true, nil
	err = validate([]StructCase{empty}, nil)
	assert.Check(t, isErr(err, werrors.PhaseLayout, werrors.KindInvalidInput))
	assert.Check(t, is.ErrorContains(err, "maps no fields"))

	err = validate([]StructCase{point}, []FuncCase{{Name: "POINT"}})
	assert.Check(t, isErr(err, werrors.PhaseSignature, werrors.KindDuplicate))
}

func TestRunSelection(t *testing.T) {
	hostArch(t)

	rep, err := Run(context.Background(), New(), RunOptions{Include: []string{"RECT", "POINT", "GetWindowRect"}})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(rep.Results, 3))
	assert.Check(t, is.Equal(rep.Results[0].Case, "POINT"))
	assert.Check(t, is.Equal(rep.Results[1].Case, "RECT"))
	assert.Check(t, is.Equal(rep.Results[2].Case, "GetWindowRect"))
	assert.Check(t, rep.OK())

	rep, err = Run(context.Background(), New(), RunOptions{
		Include:  []string{"DD*"},
		Exclude:  []string{"DDSURFACEDESC2"},
		Parallel: 1,
	})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(rep.Results, 3))
	for _, r := range rep.Results {
		assert.Check(t, r.Case != "DDSURFACEDESC2")
	}
	passed, failed, skipped := rep.Counts()
	assert.Check(t, is.Equal(failed, 0))
	assert.Check(t, is.Equal(passed+skipped, 3))
}

func TestRunAll(t *testing.T) {
	hostArch(t)

	rep, err := Run(context.Background(), New(), RunOptions{})
	assert.NilError(t, err)
	assert.Check(t, is.Len(rep.Results, len(structCases)+len(funcCases)))
	for _, r := range rep.Results {
		assert.Check(t, !r.Failed(), "%s: %v %v", r.Case, r.Err, r.Failures())
	}
	assert.Check(t, rep.OK())
}

func TestRunReportsFailures(t *testing.T) {
	hostArch(t)

	bad := StructCase{
		Name: "RECT", Native: "RECT", Candidate: typeOf[bind.Point](),
		Fields: []FieldMap{Map("left", "X"), Map("top", "Y")},
	}
	rep, err := Run(context.Background(), New(), RunOptions{Structs: []StructCase{bad}, Funcs: []FuncCase{}})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(rep.Results, 1))
	assert.Check(t, !rep.OK())

	passed, failed, skipped := rep.Counts()
	assert.Check(t, is.Equal(passed, 0))
	assert.Check(t, is.Equal(failed, 1))
	assert.Check(t, is.Equal(skipped, 0))
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), New(), RunOptions{Include: []string{"[POINT"}})
	assert.Check(t, isErr(err, werrors.PhaseConfig, werrors.KindInvalidInput))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, New(), RunOptions{})
	assert.Check(t, is.ErrorIs(err, context.Canceled))
}

func TestMatcher(t *testing.T) {
	match, err := Matcher(nil, []string{"SH*", "DDSCAPS2"})
	assert.NilError(t, err)

	for name, want := range map[string]bool{
		"POINT":               true,
		"SendMessageW(RECT*)": true,
		"SHITEMID":            false,
		"DDSCAPS2":            false,
		"DDCOLORKEY":          true,
	} {
		got, err := match(name)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got, want), name)
	}
}

// Union members share a candidate field but each one is still checked.
func TestDirectDrawUnionMembersMapped(t *testing.T) {
	for _, name := range []string{"DDPIXELFORMAT", "DDSCAPS2"} {
		t.Run(name, func(t *testing.T) {
			native, err := win32.Default().Struct(name)
			assert.NilError(t, err)
			info, err := layout.NewCalculator(winabi.Arch386).Calculate(native)
			assert.NilError(t, err)

			mapped := mapset.NewThreadUnsafeSet[string]()
			for _, fm := range caseNamed(t, name).Fields {
				mapped.Add(fm.Native)
			}
			for _, member := range info.Order {
				assert.Check(t, mapped.Contains(member), "%s.%s is not mapped", name, member)
			}
		})
	}
}
