package scaffold

import "testing"

func TestDeriveToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pascal case", "MyProject", "my_project"},
		{"consecutive capitals each separated", "ABC", "a_b_c"},
		{"already lowercase", "simple", "simple"},
		{"single capital", "X", "x"},
		{"mixed with digits", "Http2Server", "http2_server"},
		{"trailing capital", "ProjectX", "project_x"},
		{"existing underscores preserved", "my_project", "my_project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveToken(tt.in); got != tt.want {
				t.Errorf("DeriveToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveToken_Idempotent(t *testing.T) {
	names := []string{"MyProject", "ABC", "simple", "FooBar", "Http2Server"}

	for _, name := range names {
		token := DeriveToken(name)
		if again := DeriveToken(token); again != token {
			t.Errorf("DeriveToken(%q) = %q, but re-deriving gave %q", name, token, again)
		}
	}
}

func TestDeriveToken_NoUppercase(t *testing.T) {
	names := []string{"MyProject", "ABC", "XYZProject", "AlreadyLower", "A B C"}

	for _, name := range names {
		token := DeriveToken(name)
		for _, r := range token {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("DeriveToken(%q) = %q contains uppercase %q", name, token, r)
			}
		}
	}
}
