package utils

import "testing"

func TestNormalizeStudentID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"64010123", "64010123"},
		{"  64010123  ", "64010123"},
		{"64 010\t123", "64010123"},
		{"64 010 123", "64010123"}, // non-breaking space counts as whitespace
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeStudentID(c.in); got != c.want {
			t.Errorf("NormalizeStudentID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Somchai Jaidee", "somchai jaidee"},
		{"  Somchai   JAIDEE ", "somchai jaidee"},
		{"somchai\tjaidee", "somchai jaidee"},
		{"สมชาย  ใจดี", "สมชาย ใจดี"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Normalization must be idempotent: running it twice yields the same
// value as running it once.
func TestNormalizeIdempotent(t *testing.T) {
	ids := []string{"64 010 123", " 64010123 ", "abc"}
	for _, id := range ids {
		once := NormalizeStudentID(id)
		if twice := NormalizeStudentID(once); twice != once {
			t.Errorf("NormalizeStudentID not idempotent for %q: %q != %q", id, twice, once)
		}
	}
	names := []string{"  Somchai   Jaidee ", "SOMCHAI JAIDEE", "สมชาย ใจดี"}
	for _, n := range names {
		once := NormalizeName(n)
		if twice := NormalizeName(once); twice != once {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", n, twice, once)
		}
	}
}
