package internal

import "testing"

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		if got := parseFlag(tt.raw); got != tt.want {
			t.Errorf("parseFlag(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestModeRoundTrip(t *testing.T) {
	SetDebug(true)
	if !IsDebug() {
		t.Error("debug mode not recorded")
	}
	SetDebug(false)
	if IsDebug() {
		t.Error("debug mode not cleared")
	}

	SetQuiet(true)
	defer SetQuiet(false)
	if !IsQuiet() {
		t.Error("quiet mode not recorded")
	}

	SetVerbose(true)
	defer SetVerbose(false)
	if !IsVerbose() {
		t.Error("verbose mode not recorded")
	}
}
