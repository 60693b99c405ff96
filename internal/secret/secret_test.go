package secret

import (
	"strings"
	"testing"
)

func TestGenerateCanonicalForm(t *testing.T) {
	s := Generate()

	if len(s) != 36 {
		t.Fatalf("Expected 36 characters, got %d: %s", len(s), s)
	}
	for _, pos := range []int{8, 13, 18, 23} {
		if s[pos] != '-' {
			t.Errorf("Expected hyphen at position %d, got %q in %s", pos, s[pos], s)
		}
	}
	if s[14] != '4' {
		t.Errorf("Expected version nibble 4, got %q in %s", s[14], s)
	}
	if s != strings.ToLower(s) {
		t.Errorf("Expected lowercase value, got %s", s)
	}
	if !IsCanonical(s) {
		t.Errorf("Generated value failed canonical check: %s", s)
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := Generate()
		if seen[s] {
			t.Fatalf("Duplicate value after %d generations: %s", i, s)
		}
		seen[s] = true
	}
}

func TestIsCanonicalAccepts(t *testing.T) {
	valid := []string{
		"3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"00000000-0000-4000-8000-000000000000",
		"ffffffff-ffff-4fff-bfff-ffffffffffff",
	}
	for _, s := range valid {
		if !IsCanonical(s) {
			t.Errorf("Expected %s to be canonical", s)
		}
	}
}

func TestIsCanonicalRejects(t *testing.T) {
	invalid := []string{
		"",
		"3fa85f64-5717-4562-b3fc-2c963f66afa",    // too short
		"3fa85f64-5717-4562-b3fc-2c963f66afa6a",  // too long
		"3FA85F64-5717-4562-B3FC-2C963F66AFA6",   // uppercase
		"3fa85f64-5717-1562-b3fc-2c963f66afa6",   // version 1
		"3fa85f64-5717-4562-03fc-2c963f66afa6",   // bad variant
		"3fa85f6457174562b3fc2c963f66afa6",       // no hyphens
		"3fa85f64_5717_4562_b3fc_2c963f66afa6",   // wrong separators
		"3fa85f64-5717-4562-b3fc-2c963g66afa6",   // non-hex character
		"{3fa85f64-5717-4562-b3fc-2c963f66afa6}", // braced form
	}
	for _, s := range invalid {
		if IsCanonical(s) {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}
