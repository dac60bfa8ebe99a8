package cmd

import "testing"

func TestRenderTableIncludesHeadersAndRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"1", "2"}, {"3", "4"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if out == "" {
		t.Fatal("expected non-empty table output")
	}
	for _, want := range []string{"A", "B", "1", "2", "3", "4"} {
		if !contains(out, want) {
			t.Fatalf("expected table output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderTableEmptyHeadersReturnsEmptyString(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Fatalf("expected empty output for no headers, got %q", out)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
