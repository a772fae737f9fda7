package models

import "testing"

func TestParseSubject(t *testing.T) {
	for _, s := range []string{"Math", "Chemistry", "Physics"} {
		subject, err := ParseSubject(s)
		if err != nil {
			t.Errorf("ParseSubject(%q) failed: %v", s, err)
		}
		if string(subject) != s {
			t.Errorf("ParseSubject(%q) = %q", s, subject)
		}
	}

	for _, s := range []string{"", "math", "Biology", "MATH"} {
		if _, err := ParseSubject(s); err == nil {
			t.Errorf("ParseSubject(%q) should fail", s)
		}
	}
}

func TestParseSortBy(t *testing.T) {
	cases := map[string]SortBy{
		"":       SortByNone,
		"None":   SortByNone,
		"Oldest": SortByOldest,
		"Newest": SortByNewest,
	}
	for in, want := range cases {
		got, err := ParseSortBy(in)
		if err != nil {
			t.Errorf("ParseSortBy(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSortBy(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseSortBy("newest"); err == nil {
		t.Error("ParseSortBy should reject unknown values")
	}
}

func TestGroupOperationValid(t *testing.T) {
	if !OperationJoin.Valid() || !OperationLeave.Valid() {
		t.Error("defined operations should be valid")
	}
	if GroupOperation("Quit").Valid() {
		t.Error("unknown operation should be invalid")
	}
}
