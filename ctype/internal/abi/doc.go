// Package abi provides internal arithmetic helpers for native layout
// computation: alignment rounding, #pragma pack capping, and overflow-checked
// size arithmetic.
//
// This package is internal to ctype.
package abi
