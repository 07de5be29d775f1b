package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ana & Mark", "ana-mark"},
		{"JKL Miklavžev turnir 2025", "jkl-miklav-ev-turnir-2025"},
		{"  Hello  World  ", "hello-world"},
		{"---", ""},
		{"Poroka2024", "poroka2024"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateSecureTokenUnique(t *testing.T) {
	a, err := GenerateSecureToken(8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSecureToken(8)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two tokens should not collide")
	}
	if len(a) == 0 {
		t.Error("token is empty")
	}
}
