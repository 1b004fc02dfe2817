package model

import (
	"errors"
	"testing"

	"github.com/tr3ysmith/dxf/core"
)

func TestVersionCodes(t *testing.T) {
	tests := []struct {
		version AcadVersion
		code    string
	}{
		{R9, "AC1004"},
		{R10, "AC1006"},
		{R12, "AC1009"},
		{R13, "AC1012"},
		{R14, "AC1014"},
		{R2000, "AC1015"},
		{R2004, "AC1018"},
		{R2007, "AC1021"},
		{R2010, "AC1024"},
		{R2013, "AC1027"},
		{R2018, "AC1032"},
	}

	for _, tt := range tests {
		if got := tt.version.Code(); got != tt.code {
			t.Errorf("%s.Code() = %q, want %q", tt.version, got, tt.code)
		}
		parsed, err := VersionFromCode(tt.code)
		if err != nil {
			t.Errorf("VersionFromCode(%q) error: %v", tt.code, err)
		}
		if parsed != tt.version {
			t.Errorf("VersionFromCode(%q) = %s, want %s", tt.code, parsed, tt.version)
		}
	}
}

func TestVersionFromCode_SharedR11R12(t *testing.T) {
	// R11 and R12 share AC1009; parsing always yields R12.
	if R11.Code() != "AC1009" {
		t.Errorf("R11.Code() = %q, want AC1009", R11.Code())
	}
	v, err := VersionFromCode("AC1009")
	if err != nil || v != R12 {
		t.Errorf("VersionFromCode(AC1009) = %s, %v; want R12", v, err)
	}
}

func TestVersionFromCode_Unknown(t *testing.T) {
	if _, err := VersionFromCode("AC9999"); !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("VersionFromCode(AC9999) = %v, want ErrInvalidValue", err)
	}
}

func TestVersionGates(t *testing.T) {
	tests := []struct {
		version   AcadVersion
		handles   bool
		thumbnail bool
		unicode   bool
	}{
		{R12, false, false, false},
		{R13, true, false, false},
		{R14, true, false, false},
		{R2000, true, true, false},
		{R2004, true, true, false},
		{R2007, true, true, true},
		{R2018, true, true, true},
	}

	for _, tt := range tests {
		if got := tt.version.SupportsHandles(); got != tt.handles {
			t.Errorf("%s.SupportsHandles() = %v, want %v", tt.version, got, tt.handles)
		}
		if got := tt.version.SupportsThumbnail(); got != tt.thumbnail {
			t.Errorf("%s.SupportsThumbnail() = %v, want %v", tt.version, got, tt.thumbnail)
		}
		if got := tt.version.IsUnicode(); got != tt.unicode {
			t.Errorf("%s.IsUnicode() = %v, want %v", tt.version, got, tt.unicode)
		}
	}
}
