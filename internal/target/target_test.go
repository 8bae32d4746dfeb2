package target

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveProfile(t *testing.T) {
	dir := t.TempDir()

	profilesDir := filepath.Join(dir, "repos", "gentoo", "profiles", "default", "linux", "amd64", "23.0")
	if err := os.MkdirAll(profilesDir, 0755); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(dir, "make.profile")
	if err := os.Symlink(profilesDir, link); err != nil {
		t.Fatal(err)
	}

	profile, err := ResolveProfile(link)
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if profile != "default/linux/amd64/23.0" {
		t.Errorf("ResolveProfile() = %q, want %q", profile, "default/linux/amd64/23.0")
	}
}

func TestResolveProfileRelativeLink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "make.profile")
	if err := os.Symlink("../../var/db/repos/gentoo/profiles/default/linux/arm64", link); err != nil {
		t.Fatal(err)
	}

	profile, err := ResolveProfile(link)
	if err != nil {
		t.Fatalf("ResolveProfile() error: %v", err)
	}
	if profile != "default/linux/arm64" {
		t.Errorf("ResolveProfile() = %q, want %q", profile, "default/linux/arm64")
	}
}

func TestResolveProfileNotALink(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "make.profile")
	if err := os.WriteFile(plain, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ResolveProfile(plain); err == nil {
		t.Error("ResolveProfile() on a non-symlink should fail")
	}
}

func TestParseMakeConf(t *testing.T) {
	content := `
# Global settings
ARCH="amd64"
CHOST="x86_64-pc-linux-gnu"

ACCEPT_KEYWORDS="${ARCH}"
MAKEOPTS='-j8'
EMPTY=""
UNQUOTED=plain
BAD LINE IGNORED
`
	mc, err := ParseMakeConf(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseMakeConf() error: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{key: "ARCH", want: "amd64"},
		{key: "CHOST", want: "x86_64-pc-linux-gnu"},
		{key: "ACCEPT_KEYWORDS", want: "amd64"},
		{key: "MAKEOPTS", want: "-j8"},
		{key: "EMPTY", want: ""},
		{key: "UNQUOTED", want: "plain"},
		{key: "MISSING", want: ""},
	}
	for _, tt := range tests {
		if got := mc.Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if mc.Arch() != "amd64" {
		t.Errorf("Arch() = %q, want amd64", mc.Arch())
	}
}

func TestLoadMakeConfMissing(t *testing.T) {
	if _, err := LoadMakeConf(filepath.Join(t.TempDir(), "make.conf")); err == nil {
		t.Error("LoadMakeConf() on a missing file should fail")
	}
}
