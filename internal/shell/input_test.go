// file: internal/shell/input_test.go
// version: 1.0.0
// guid: ff9dc8bd-5996-4221-9fc0-8b19afe6a11d

package shell

import (
	"errors"
	"testing"

	"github.com/jdfalk/library-catalog/internal/models"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    Choice
		wantErr bool
	}{
		{input: "0", want: ChoiceExit},
		{input: "1", want: ChoiceAdd},
		{input: " 4 ", want: ChoiceDownload},
		{input: "8", want: ChoiceDescribe},
		{input: "9", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "add", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseChoice(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidChoice) {
				t.Errorf("ParseChoice(%q): expected ErrInvalidChoice, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChoice(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseChoice(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "2000", want: 2000},
		{input: " 2024", want: 2024},
		{input: "2025", wantErr: models.ErrInvalidYear},
		{input: "twenty", wantErr: ErrNotNumber},
		{input: "", wantErr: ErrNotNumber},
	}

	for _, tc := range tests {
		got, err := ParseYear(tc.input, 2024)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseYear(%q): expected %v, got %v", tc.input, tc.wantErr, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseYear(%q) = %d, %v; want %d", tc.input, got, err, tc.want)
		}
	}
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "100", want: 100},
		{input: "1", want: 1},
		{input: "0", wantErr: models.ErrInvalidPages},
		{input: "-5", wantErr: models.ErrInvalidPages},
		{input: "12.5", wantErr: ErrNotNumber},
	}

	for _, tc := range tests {
		got, err := ParsePages(tc.input)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParsePages(%q): expected %v, got %v", tc.input, tc.wantErr, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePages(%q) = %d, %v; want %d", tc.input, got, err, tc.want)
		}
	}
}
