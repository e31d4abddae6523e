package update

import (
	"strings"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int // sign only
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"0.10.0", "0.9.0", 1},
		{"1.2", "1.2.0", 0},
		{"1", "0.9.9", 1},
	}
	for _, c := range cases {
		got := compareVersions(c.a, c.b)
		switch {
		case c.want == 0 && got != 0:
			t.Errorf("compareVersions(%q, %q) = %d, want 0", c.a, c.b, got)
		case c.want > 0 && got <= 0:
			t.Errorf("compareVersions(%q, %q) = %d, want > 0", c.a, c.b, got)
		case c.want < 0 && got >= 0:
			t.Errorf("compareVersions(%q, %q) = %d, want < 0", c.a, c.b, got)
		}
	}
}

func TestNeedsUpdate(t *testing.T) {
	r := &Result{Latest: "0.2.0", Current: "0.1.0"}
	if !r.NeedsUpdate() {
		t.Error("expected update needed for older current version")
	}

	r = &Result{Latest: "0.1.0", Current: "0.1.0"}
	if r.NeedsUpdate() {
		t.Error("expected no update for equal versions")
	}

	var nilResult *Result
	if nilResult.NeedsUpdate() {
		t.Error("nil result should never need update")
	}
}

func TestNotice(t *testing.T) {
	r := &Result{Latest: "0.2.0", Current: "0.1.0", UpdateURL: "https://example.com/r"}
	got := r.Notice()
	if !strings.Contains(got, "v0.1.0") || !strings.Contains(got, "v0.2.0") || !strings.Contains(got, r.UpdateURL) {
		t.Errorf("notice missing versions or URL: %q", got)
	}

	r = &Result{Latest: "0.1.0", Current: "0.1.0"}
	if r.Notice() != "" {
		t.Errorf("up-to-date result should have no notice, got %q", r.Notice())
	}

	var nilResult *Result
	if nilResult.Notice() != "" {
		t.Error("failed check should have no notice")
	}
}
