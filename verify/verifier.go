package verify

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/bind"
	"github.com/wippyai/winabi/ctype/layout"
	"github.com/wippyai/winabi/errors"
	"github.com/wippyai/winabi/verify/internal/probe"
	"github.com/wippyai/winabi/win32"
)

// Verifier compares candidate declarations against a native catalog for one
// architecture. Candidate layouts come from reflect and so always describe
// the host; the target architecture must match it for a case to be
// evaluated.
type Verifier struct {
	catalog  *win32.Catalog
	registry *bind.Registry
	logger   *zap.Logger
	arch     winabi.Arch
	host     winabi.Arch
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithArch sets the target architecture. Cases restricted to other
// architectures are skipped.
func WithArch(arch winabi.Arch) Option {
	return func(v *Verifier) { v.arch = arch }
}

// WithCatalog sets the native declarations to compare against.
func WithCatalog(c *win32.Catalog) Option {
	return func(v *Verifier) { v.catalog = c }
}

// WithRegistry sets the import declarations function cases resolve against.
func WithRegistry(r *bind.Registry) Option {
	return func(v *Verifier) { v.registry = r }
}

// WithLogger sets the logger used for per-case diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

// New creates a verifier for the host architecture using the built-in
// catalog and registry.
func New(opts ...Option) *Verifier {
	host, _ := winabi.HostArch()
	v := &Verifier{
		catalog:  win32.Default(),
		registry: bind.Default(),
		logger:   Logger(),
		arch:     host,
		host:     host,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Arch returns the target architecture.
func (v *Verifier) Arch() winabi.Arch {
	return v.arch
}

// precheck decides whether a case restricted to arches can run. It returns
// a finished result when it cannot.
func (v *Verifier) precheck(name string, arches []winabi.Arch) (Result, bool) {
	r := Result{Case: name, Arch: v.arch}
	if v.arch == "" {
		r.Skipped = true
		r.SkipReason = "host architecture is not modeled"
		return r, false
	}
	if !appliesTo(arches, v.arch) {
		r.Skipped = true
		r.SkipReason = errors.ArchSkipped(name, v.arch.String()).Detail + " (only " + archList(arches) + ")"
		return r, false
	}
	if v.arch != v.host {
		r.Err = errors.InvalidInput(errors.PhaseIntrospect,
			fmt.Sprintf("Go layouts are measured on %s and cannot be compared for %s", v.host, v.arch))
		return r, false
	}
	return r, true
}

// EvaluateStruct measures c on both sides. Every mapped field is checked
// independently; a field that cannot be resolved yields a failed check
// rather than aborting the case.
func (v *Verifier) EvaluateStruct(c StructCase) Result {
	r, ok := v.precheck(c.Name, c.Arches)
	if !ok {
		v.logResult(r)
		return r
	}
	r.Err = v.evaluateStruct(c, &r)
	v.logResult(r)
	return r
}

func (v *Verifier) evaluateStruct(c StructCase, r *Result) error {
	native, err := v.catalog.Struct(c.Native)
	if err != nil {
		return err
	}
	if c.Candidate == nil {
		return errors.InvalidInput(errors.PhaseIntrospect, c.Name+" has no candidate type")
	}
	if !c.compares() {
		return c.emptyError()
	}
	if err := probe.Overlayable(c.Candidate); err != nil {
		return err
	}

	calc := layout.NewCalculator(v.arch)
	info, err := calc.Calculate(native)
	if err != nil {
		return err
	}

	if !c.HeaderOnly {
		r.Checks = append(r.Checks, Check{
			Subject:  SubjectSize,
			What:     c.Native,
			GoType:   c.Candidate.String(),
			Expected: info.Size,
			Actual:   probe.Size(c.Candidate),
		})
	}

	for _, fm := range c.Fields {
		check := Check{Subject: SubjectOffset, What: fm.Native}
		if fm.Candidate != exported(fm.Native) {
			check.What += " -> " + fm.Candidate
		}

		want, _, err := calc.OffsetOf(native, fm.Native)
		if err != nil {
			check.Err = err
			r.Checks = append(r.Checks, check)
			continue
		}
		got, _, err := probe.Offset(c.Candidate, fm.Candidate)
		if err != nil {
			check.Err = err
			r.Checks = append(r.Checks, check)
			continue
		}
		check.Expected, check.Actual = want, got
		r.Checks = append(r.Checks, check)
	}
	return nil
}

// EvaluateFunc resolves the import declared by c and compares the return
// width and every parameter width against the native prototype. Function
// pointers measure as handles and enums as their underlying integer.
func (v *Verifier) EvaluateFunc(c FuncCase) Result {
	r, ok := v.precheck(c.Name, c.Arches)
	if !ok {
		v.logResult(r)
		return r
	}
	r.Err = v.evaluateFunc(c, &r)
	v.logResult(r)
	return r
}

func (v *Verifier) evaluateFunc(c FuncCase, r *Result) error {
	proto, err := v.catalog.Proto(c.Native)
	if err != nil {
		return err
	}
	imp, err := v.registry.Resolve(c.entry(), c.Params...)
	if err != nil {
		return err
	}

	calc := layout.NewCalculator(v.arch)
	params := imp.Params()

	if len(params) != len(proto.Params) {
		r.Checks = append(r.Checks, Check{
			Subject:  SubjectParamCount,
			Expected: uintptr(len(proto.Params)),
			Actual:   uintptr(len(params)),
		})
	}

	ret := Check{Subject: SubjectReturn, What: proto.Return.String()}
	ret.Expected, ret.Err = calc.ParamSize(proto.Return)
	if ret.Err == nil {
		ret.Actual, ret.Err = probe.Width(imp.Result())
	}
	r.Checks = append(r.Checks, ret)

	for i := range min(len(params), len(proto.Params)) {
		np := proto.Params[i]
		check := Check{Subject: SubjectParam, What: strconv.Itoa(i) + " (" + np.Name + " " + np.Type.String() + ")"}
		check.Expected, check.Err = calc.ParamSize(np.Type)
		if check.Err == nil {
			check.Actual, check.Err = probe.Width(params[i])
		}
		r.Checks = append(r.Checks, check)
	}
	return nil
}

func (v *Verifier) logResult(r Result) {
	switch {
	case r.Skipped:
		v.logger.Debug("case skipped",
			zap.String("case", r.Case),
			zap.String("arch", r.Arch.String()),
			zap.String("reason", r.SkipReason))
	case r.Err != nil:
		v.logger.Warn("case not evaluated",
			zap.String("case", r.Case),
			zap.String("arch", r.Arch.String()),
			zap.Error(r.Err))
	default:
		v.logger.Debug("case evaluated",
			zap.String("case", r.Case),
			zap.String("arch", r.Arch.String()),
			zap.Int("checks", len(r.Checks)),
			zap.Int("failures", len(r.Failures())))
	}
}

// CheckStruct evaluates c and reports every failed check through t. A case
// that does not apply to the target architecture is skipped.
func (v *Verifier) CheckStruct(t winabi.TestingT, c StructCase) {
	t.Helper()
	report(t, v.EvaluateStruct(c))
}

// CheckFunc evaluates c and reports every failed check through t.
func (v *Verifier) CheckFunc(t winabi.TestingT, c FuncCase) {
	t.Helper()
	report(t, v.EvaluateFunc(c))
}

func report(t winabi.TestingT, r Result) {
	t.Helper()
	if r.Skipped {
		t.Skipf("%s: %s", r.Case, r.SkipReason)
		return
	}
	if r.Err != nil {
		t.Errorf("%s: %v", r.Case, r.Err)
		return
	}
	for _, c := range r.Failures() {
		t.Errorf("%s: %v", r.Case, c.Failure())
	}
}

// CheckStruct verifies c for the host with the built-in catalog.
func CheckStruct(t winabi.TestingT, c StructCase) {
	t.Helper()
	New().CheckStruct(t, c)
}

// CheckFunc verifies c for the host with the built-in catalog and registry.
func CheckFunc(t winabi.TestingT, c FuncCase) {
	t.Helper()
	New().CheckFunc(t, c)
}
