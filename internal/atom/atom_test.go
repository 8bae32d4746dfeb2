package atom

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Atom
		wantErr bool
	}{
		{
			name: "bare atom",
			spec: "www-client/firefox",
			want: Atom{Op: OpAny, Category: "www-client", Package: "firefox"},
		},
		{
			name: "category wildcard",
			spec: "x11-libs/*",
			want: Atom{Op: OpAny, Category: "x11-libs", Package: "*"},
		},
		{
			name: "equals with version",
			spec: "=app-editors/vim-9.0",
			want: Atom{Op: OpEqual, Category: "app-editors", Package: "vim", Version: "9.0"},
		},
		{
			name: "equals with version prefix wildcard",
			spec: "=dev-lang/python-3*",
			want: Atom{Op: OpEqual, Category: "dev-lang", Package: "python", Version: "3*"},
		},
		{
			name: "greater equal",
			spec: ">=sys-apps/portage-2.1",
			want: Atom{Op: OpGreaterEqual, Category: "sys-apps", Package: "portage", Version: "2.1"},
		},
		{
			name: "less than",
			spec: "<net-misc/curl-8.0",
			want: Atom{Op: OpLess, Category: "net-misc", Package: "curl", Version: "8.0"},
		},
		{
			name: "revision operator",
			spec: "~media-libs/libpng-1.6.40",
			want: Atom{Op: OpRevision, Category: "media-libs", Package: "libpng", Version: "1.6.40"},
		},
		{
			name: "hyphenated package with version",
			spec: "=www-client/firefox-bin-102.0-r1",
			want: Atom{Op: OpEqual, Category: "www-client", Package: "firefox-bin", Version: "102.0-r1"},
		},
		{
			name: "surrounding whitespace trimmed",
			spec: "  app-misc/hello ",
			want: Atom{Op: OpAny, Category: "app-misc", Package: "hello"},
		},
		{name: "empty", spec: "", wantErr: true},
		{name: "no category", spec: "firefox", wantErr: true},
		{name: "operator without version", spec: ">=sys-apps/portage", wantErr: true},
		{name: "name wildcard with operator", spec: ">=x11-libs/*-1.0", wantErr: true},
		{name: "version wildcard needs equals", spec: ">=dev-lang/python-3*", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, *got, tt.want)
			}
		})
	}
}

func TestParseEmptyAtomSentinel(t *testing.T) {
	if _, err := Parse("   "); !errors.Is(err, ErrEmptyAtom) {
		t.Errorf("Parse(blank) error = %v, want ErrEmptyAtom", err)
	}
}

func TestMatchesPackage(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		category string
		pkg      string
		version  string
		want     bool
	}{
		{name: "bare atom matches any version", spec: "www-client/firefox", category: "www-client", pkg: "firefox", version: "102.0", want: true},
		{name: "bare atom wrong package", spec: "www-client/firefox", category: "www-client", pkg: "chromium", version: "1.0", want: false},
		{name: "bare atom wrong category", spec: "www-client/firefox", category: "mail-client", pkg: "firefox", version: "1.0", want: false},
		{name: "package glob", spec: "x11-libs/*", category: "x11-libs", pkg: "gtk+", version: "3.24", want: true},
		{name: "package glob wrong category", spec: "x11-libs/*", category: "x11-misc", pkg: "gtk+", version: "3.24", want: false},
		{name: "prefix glob", spec: "media-plugins/gst-*", category: "media-plugins", pkg: "gst-plugins-good", version: "1.22", want: true},
		{name: "equals exact", spec: "=app-editors/vim-9.0", category: "app-editors", pkg: "vim", version: "9.0", want: true},
		{name: "equals mismatch", spec: "=app-editors/vim-9.0", category: "app-editors", pkg: "vim", version: "9.1", want: false},
		{name: "equals version prefix", spec: "=dev-lang/python-3*", category: "dev-lang", pkg: "python", version: "3.11.4", want: true},
		{name: "equals version prefix mismatch", spec: "=dev-lang/python-3*", category: "dev-lang", pkg: "python", version: "2.7.18", want: false},
		{name: "greater equal on newer", spec: ">=sys-apps/portage-2.1", category: "sys-apps", pkg: "portage", version: "3.0.30", want: true},
		{name: "greater equal on equal", spec: ">=sys-apps/portage-2.1", category: "sys-apps", pkg: "portage", version: "2.1", want: true},
		{name: "greater equal on older", spec: ">=sys-apps/portage-2.1", category: "sys-apps", pkg: "portage", version: "2.0.51", want: false},
		{name: "less than", spec: "<net-misc/curl-8.0", category: "net-misc", pkg: "curl", version: "7.88.1", want: true},
		{name: "revision operator ignores revisions", spec: "~media-libs/libpng-1.6.40", category: "media-libs", pkg: "libpng", version: "1.6.40-r2", want: true},
		{name: "revision operator version mismatch", spec: "~media-libs/libpng-1.6.40", category: "media-libs", pkg: "libpng", version: "1.6.39", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			got := a.MatchesPackage(tt.category, tt.pkg, tt.version)
			if got != tt.want {
				t.Errorf("%q.MatchesPackage(%s/%s-%s) = %v, want %v",
					tt.spec, tt.category, tt.pkg, tt.version, got, tt.want)
			}
		})
	}
}

func TestAtomString(t *testing.T) {
	specs := []string{
		"www-client/firefox",
		"=app-editors/vim-9.0",
		">=sys-apps/portage-2.1",
		"~media-libs/libpng-1.6.40",
	}
	for _, spec := range specs {
		a, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", spec, err)
		}
		if a.String() != spec {
			t.Errorf("String() = %q, want %q", a.String(), spec)
		}
	}
}
