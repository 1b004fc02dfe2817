package core

import "testing"

func TestTypeForCode(t *testing.T) {
	tests := []struct {
		code int
		want ValueType
	}{
		{0, TypeString},
		{2, TypeString},
		{9, TypeString},
		{10, TypeDouble},
		{39, TypeDouble},
		{40, TypeDouble},
		{62, TypeInt16},
		{70, TypeInt16},
		{90, TypeInt32},
		{100, TypeString},
		{105, TypeString},
		{140, TypeDouble},
		{160, TypeInt64},
		{280, TypeInt16},
		{290, TypeBool},
		{310, TypeString},
		{330, TypeString},
		{370, TypeInt16},
		{420, TypeInt32},
		{450, TypeInt64},
		{460, TypeDouble},
		{999, TypeString},
		{1001, TypeString},
		{1010, TypeDouble},
		{1070, TypeInt16},
		{1071, TypeInt32},
	}

	for _, tt := range tests {
		if got := TypeForCode(tt.code); got != tt.want {
			t.Errorf("TypeForCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCodePair_Accessors(t *testing.T) {
	p := NewStringPair(2, "SECTION")
	if s, err := p.AsString(); err != nil || s != "SECTION" {
		t.Errorf("AsString() = %q, %v", s, err)
	}
	if _, err := p.AsInt16(); err == nil {
		t.Error("AsInt16() on a string pair should fail")
	}

	b := NewInt16Pair(280, 1)
	v, err := b.AsBool()
	if err != nil || !v {
		t.Errorf("AsBool() on int16 1 = %v, %v; want true", v, err)
	}
}

func TestCodePair_IsMarker(t *testing.T) {
	tests := []struct {
		pair  CodePair
		value string
		want  bool
	}{
		{NewStringPair(0, "SECTION"), "SECTION", true},
		{NewStringPair(0, "SECTION"), "ENDSEC", false},
		{NewStringPair(2, "SECTION"), "SECTION", false},
		{NewInt16Pair(0, 1), "SECTION", false},
	}

	for _, tt := range tests {
		if got := tt.pair.IsMarker(tt.value); got != tt.want {
			t.Errorf("%s.IsMarker(%q) = %v, want %v", tt.pair, tt.value, got, tt.want)
		}
	}
}

func TestDouble_String(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1, "1.0"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		if got := Double(tt.value).String(); got != tt.want {
			t.Errorf("Double(%v).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}
