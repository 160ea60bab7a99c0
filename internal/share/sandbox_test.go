package share

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ContainedPaths(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "docshare", "public")

	cases := []struct {
		name   string
		folder string
		sub    string
		want   string
	}{
		{"share root itself", "docs", "", filepath.Join(root, "docs")},
		{"plain child", "docs", "report.pdf", filepath.Join(root, "docs", "report.pdf")},
		{"nested child", "docs", "2025/q3/report.pdf", filepath.Join(root, "docs", "2025", "q3", "report.pdf")},
		{"dot segments that stay inside", "docs", "a/./b/../c.txt", filepath.Join(root, "docs", "a", "c.txt")},
		{"leading slash treated as relative", "docs", "/report.pdf", filepath.Join(root, "docs", "report.pdf")},
		{"backslash separators", "docs", "a\\b.txt", filepath.Join(root, "docs", "a", "b.txt")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(root, tc.folder, tc.sub)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_EscapeAttempts(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "docshare", "public")

	cases := []struct {
		name   string
		folder string
		sub    string
	}{
		{"plain dotdot", "docs", "../"},
		{"deep dotdot", "docs", "../../etc"},
		{"dotdot into passwd", "docs", "../../../../etc/passwd"},
		{"dotdot after valid segment", "docs", "a/../../secrets"},
		{"backslash dotdot", "docs", "..\\..\\etc"},
		{"mixed separators", "docs", "a/..\\../etc"},
		{"sibling prefix trick", "docs", "../docs-evil/x"},
		{"folder itself escapes", "../outside", ""},
		{"folder with dotdot", "docs/../..", "x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(root, tc.folder, tc.sub)
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.Empty(t, got)
		})
	}
}

// Whatever the input, a successful resolve must land at or under the
// link's base directory.
func TestResolve_SuccessImpliesContainment(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "srv", "docshare", "public")
	base := filepath.Join(root, "docs")

	subs := []string{
		"", ".", "a", "a/b/c", "../x", "../../x", "a/../b", "a/../../b",
		"/abs", "\\win", "..\\x", "a\\..\\..\\b", "....//x", ". . /..",
	}

	for _, sub := range subs {
		got, err := Resolve(root, "docs", sub)
		if err != nil {
			assert.ErrorIs(t, err, ErrAccessDenied, "sub=%q", sub)
			continue
		}
		ok := got == base || strings.HasPrefix(got, base+string(filepath.Separator))
		assert.True(t, ok, "sub=%q resolved outside base: %q", sub, got)
	}
}
