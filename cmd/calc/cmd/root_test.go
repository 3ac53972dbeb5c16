package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestOperandArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no negatives untouched",
			in:   []string{"add", "5", "3", "--json"},
			want: []string{"add", "5", "3", "--json"},
		},
		{
			name: "negative operand",
			in:   []string{"add", "-1", "1"},
			want: []string{"add", "--", "-1", "1"},
		},
		{
			name: "flags stay in front",
			in:   []string{"divide", "-5", "3", "--json"},
			want: []string{"divide", "--json", "--", "-5", "3"},
		},
		{
			name: "flag value is not an operand",
			in:   []string{"divide", "5", "-3", "-p", "-1"},
			want: []string{"divide", "-p", "-1", "--", "5", "-3"},
		},
		{
			name: "persistent flag before command",
			in:   []string{"--config", "c.json", "sub", "-2", "-3"},
			want: []string{"sub", "--config", "c.json", "--", "-2", "-3"},
		},
		{
			name: "lone minus is an operand",
			in:   []string{"eval", "-1", "-", "2"},
			want: []string{"eval", "--", "-1", "-", "2"},
		},
		{
			name: "explicit terminator wins",
			in:   []string{"add", "--", "-1", "1"},
			want: []string{"add", "--", "-1", "1"},
		},
		{
			name: "negative float",
			in:   []string{"multiply", "-2.5", "4"},
			want: []string{"multiply", "--", "-2.5", "4"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := operandArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("operandArgs(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsNegativeNumber(t *testing.T) {
	for in, want := range map[string]bool{
		"-1":     true,
		"-0.5":   true,
		"-1e3":   true,
		"-":      false,
		"-p":     false,
		"--json": false,
		"1":      false,
		"-inf":   false,
	} {
		if got := isNegativeNumber(in); got != want {
			t.Errorf("isNegativeNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsUsageError(t *testing.T) {
	if !IsUsageError(usageErrorf("bad %s", "input")) {
		t.Error("expected usageErrorf to produce a usage error")
	}
	wrapped := fmt.Errorf("outer: %w", &UsageError{Err: errors.New("inner")})
	if !IsUsageError(wrapped) {
		t.Error("expected wrapped usage error to match")
	}
	if IsUsageError(errors.New("plain")) {
		t.Error("plain error is not a usage error")
	}
}
