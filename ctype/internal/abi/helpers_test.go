package abi

import (
	"math"
	"testing"
)

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uintptr
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{13, 1, 13},
		{7, 0, 7},
		{36, 8, 40},
	}
	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestCap(t *testing.T) {
	if got := Cap(8, 0); got != 8 {
		t.Errorf("Cap(8, 0) = %d, want 8", got)
	}
	if got := Cap(8, 1); got != 1 {
		t.Errorf("Cap(8, 1) = %d, want 1", got)
	}
	if got := Cap(2, 4); got != 2 {
		t.Errorf("Cap(2, 4) = %d, want 2", got)
	}
}

func TestSafeArithmetic(t *testing.T) {
	if v, ok := SafeMul(260, 2); !ok || v != 520 {
		t.Errorf("SafeMul(260, 2) = %d, %v", v, ok)
	}
	if _, ok := SafeMul(math.MaxUint32, 2); ok {
		t.Error("SafeMul should overflow")
	}
	if v, ok := SafeAdd(4, 4); !ok || v != 8 {
		t.Errorf("SafeAdd(4, 4) = %d, %v", v, ok)
	}
	if _, ok := SafeAdd(math.MaxUint32, 1); ok {
		t.Error("SafeAdd should overflow")
	}
}
