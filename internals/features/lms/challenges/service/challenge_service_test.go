package service

import "testing"

func TestNormalizeOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tanpa perubahan", "hello", "hello"},
		{"newline penutup dibuang", "hello\n", "hello"},
		{"beberapa newline penutup", "hello\n\n\n", "hello"},
		{"CRLF jadi LF", "a\r\nb\r\n", "a\nb"},
		{"trailing space per baris", "a  \nb\t\n", "a\nb"},
		{"baris tengah dipertahankan", "a\n\nb", "a\n\nb"},
		{"leading space dipertahankan", "  a", "  a"},
		{"string kosong", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeOutput(tt.in); got != tt.want {
				t.Errorf("NormalizeOutput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputMatches(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{"identik", "42\n", "42\n", true},
		{"beda newline penutup", "42", "42\n", true},
		{"CRLF vs LF", "a\r\nb", "a\nb", true},
		{"trailing space diabaikan", "hasil ", "hasil", true},
		{"nilai beda", "42", "43", false},
		{"case sensitive", "Hello", "hello", false},
		{"leading space tidak diabaikan", " 42", "42", false},
		{"baris kosong di tengah signifikan", "a\nb", "a\n\nb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputMatches(tt.expected, tt.actual); got != tt.want {
				t.Errorf("OutputMatches(%q, %q) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestParseTestCases(t *testing.T) {
	t.Run("array valid", func(t *testing.T) {
		raw := []byte(`[{"input":"1 2","expected_output":"3"},{"input":"5 5","expected_output":"10"}]`)
		cases, err := ParseTestCases(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 2 {
			t.Fatalf("len = %d, want 2", len(cases))
		}
		if cases[0].Input != "1 2" || cases[0].ExpectedOutput != "3" {
			t.Errorf("case pertama salah parse: %+v", cases[0])
		}
	})

	t.Run("array kosong ditolak", func(t *testing.T) {
		if _, err := ParseTestCases([]byte(`[]`)); err == nil {
			t.Error("expected error untuk array kosong")
		}
	})

	t.Run("json rusak ditolak", func(t *testing.T) {
		if _, err := ParseTestCases([]byte(`{"bukan":"array"`)); err == nil {
			t.Error("expected error untuk json rusak")
		}
	})
}
