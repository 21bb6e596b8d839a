package lang

import (
	"reflect"
	"testing"
)

func TestCode_Base(t *testing.T) {
	tests := []struct {
		code Code
		want Code
	}{
		{"EN-US", "EN"},
		{"EN-GB", "EN"},
		{"DE", "DE"},
		{"PT-BR", "PT"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tt.code.Base(); got != tt.want {
			t.Errorf("Base(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCode_BaseEqual(t *testing.T) {
	if !Code("EN-US").BaseEqual("en") {
		t.Error("EN-US should base-match en")
	}
	if Code("EN-US").BaseEqual("DE") {
		t.Error("EN-US should not base-match DE")
	}
}

func TestNewPair(t *testing.T) {
	if _, err := NewPair("DE", "EN-US"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewPair("DE", "DE"); err == nil {
		t.Error("expected error for identical codes")
	}
	if _, err := NewPair("DE", "DE-CH"); err == nil {
		t.Error("expected error for same base language")
	}
	if _, err := NewPair("DE", ""); err == nil {
		t.Error("expected error for empty code")
	}
}

func TestPair_Other(t *testing.T) {
	pair := Pair{A: "DE", B: "EN-US"}

	if got := pair.Other("DE"); got != "EN-US" {
		t.Errorf("Other(DE) = %q, want EN-US", got)
	}
	if got := pair.Other("EN"); got != "DE" {
		t.Errorf("Other(EN) = %q, want DE", got)
	}
	// Detected language outside the pair translates into A.
	if got := pair.Other("FR"); got != "DE" {
		t.Errorf("Other(FR) = %q, want DE", got)
	}
}

func TestPair_Route(t *testing.T) {
	pair := Pair{A: "DE", B: "EN-US"}

	if got := pair.Route("DE", false); !reflect.DeepEqual(got, []Code{"EN-US"}) {
		t.Errorf("single-hop route = %v", got)
	}
	if got := pair.Route("DE", true); !reflect.DeepEqual(got, []Code{"EN-US", "DE"}) {
		t.Errorf("round-trip route = %v", got)
	}
	// Round trip with failed detection still produces two distinct hops.
	got := pair.Route("", true)
	if len(got) != 2 || got[0] == got[1] {
		t.Errorf("round-trip route without detection = %v", got)
	}
}
