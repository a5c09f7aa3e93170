package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if got := String(); !strings.HasPrefix(got, "version: v9.9.9\n") {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.Contains(got, "v9.9.9") || !strings.HasPrefix(got, "{{.Name}} ") {
		t.Errorf("Template() = %q", got)
	}
	if got, want := UserAgent(), "svgbuild/v9.9.9"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
