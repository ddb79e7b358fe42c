package config

import "testing"

func TestNormalizeDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgresql://u:p@localhost:5432/blog", "postgresql://u:p@localhost:5432/blog"},
		{"postgres://u:p@localhost/blog", "postgres://u:p@localhost/blog"},
		{"postgresql+asyncpg://u:p@localhost/blog", "postgresql://u:p@localhost/blog"},
		{"postgresql+psycopg2://u@h/d", "postgresql://u@h/d"},
		{"not-a-url", "not-a-url"},
	}
	for _, tt := range tests {
		if got := normalizeDatabaseURL(tt.in); got != tt.want {
			t.Errorf("normalizeDatabaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
