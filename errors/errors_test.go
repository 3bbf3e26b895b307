package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseLayout,
				Kind:       KindOffsetMismatch,
				Path:       []string{"MSG", "time"},
				GoType:     "bind.MSG",
				NativeType: "MSG",
				Detail:     "offset 36, want 32",
			},
			contains: []string{"[layout]", "offset_mismatch", "MSG.time", "bind.MSG", "native type MSG", "offset 36, want 32"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindNotFound,
			},
			contains: []string{"[resolve]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidInput,
				Detail: "parse abicheck.toml",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[config]", "invalid_input", "abicheck.toml", "caused by", "underlying error"},
		},
		{
			name: "native type only",
			err: &Error{
				Phase:      PhaseCatalog,
				Kind:       KindFieldMissing,
				NativeType: "RECT",
				Detail:     `field "width" not found`,
			},
			contains: []string{"[catalog]", "native type RECT - ", "width"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConfig,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseResolve,
		Kind:  KindAmbiguous,
		Path:  []string{"SendMessageW"},
	}

	if !err.Is(&Error{Phase: PhaseResolve, Kind: KindAmbiguous}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseLayout, Kind: KindAmbiguous}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseResolve, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseResolve, Kind: KindAmbiguous}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLayout, KindSizeMismatch).
		Path("RECT").
		GoType("bind.RECT").
		NativeType("RECT").
		Values(16, 20).
		Cause(cause).
		Detail("size %d, want %d", 20, 16).
		Build()

	if err.Phase != PhaseLayout {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLayout)
	}
	if err.Kind != KindSizeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindSizeMismatch)
	}
	if len(err.Path) != 1 || err.Path[0] != "RECT" {
		t.Errorf("Path = %v, want [RECT]", err.Path)
	}
	if err.GoType != "bind.RECT" {
		t.Errorf("GoType = %v, want 'bind.RECT'", err.GoType)
	}
	if err.NativeType != "RECT" {
		t.Errorf("NativeType = %v, want 'RECT'", err.NativeType)
	}
	if err.Expected != 16 || err.Actual != 20 {
		t.Errorf("Expected/Actual = %d/%d, want 16/20", err.Expected, err.Actual)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "size 20, want 16" {
		t.Errorf("Detail = %v, want 'size 20, want 16'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("SizeMismatch", func(t *testing.T) {
		err := SizeMismatch("bind.POINT", "POINT", 8, 12)
		if err.Kind != KindSizeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSizeMismatch)
		}
		if err.Expected != 8 || err.Actual != 12 {
			t.Errorf("Expected=%d Actual=%d", err.Expected, err.Actual)
		}
	})

	t.Run("OffsetMismatch", func(t *testing.T) {
		err := OffsetMismatch([]string{"POINT", "y"}, 4, 8)
		if err.Kind != KindOffsetMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOffsetMismatch)
		}
		if !strings.Contains(err.Error(), "offset 8, want 4") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseResolve, "declaration", "SendMessageW")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `declaration "SendMessageW" not found`) {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("Ambiguous", func(t *testing.T) {
		err := Ambiguous("SendMessageW", 2)
		if err.Kind != KindAmbiguous || err.Phase != PhaseResolve {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseIntrospect, "bind.ITEMIDLIST", "slice field")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		native := FieldMissing(PhaseCatalog, []string{"RECT"}, "RECT", "width")
		if native.NativeType != "RECT" || native.GoType != "" {
			t.Errorf("NativeType=%q GoType=%q", native.NativeType, native.GoType)
		}
		candidate := FieldMissing(PhaseIntrospect, []string{"RECT"}, "bind.RECT", "Width")
		if candidate.GoType != "bind.RECT" || candidate.NativeType != "" {
			t.Errorf("NativeType=%q GoType=%q", candidate.NativeType, candidate.GoType)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := Duplicate(PhaseCatalog, "struct", "RECT")
		if err.Kind != KindDuplicate {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDuplicate)
		}
	})

	t.Run("ArchSkipped", func(t *testing.T) {
		err := ArchSkipped("DDSURFACEDESC2", "amd64")
		if err.Kind != KindArchSkipped {
			t.Errorf("Kind = %v, want %v", err.Kind, KindArchSkipped)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("bad toml")
		err := ParseFailed("config", cause)
		if !errors.Is(err, cause) {
			t.Error("ParseFailed should wrap cause")
		}
	})
}
