package target

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

// varRefRegex matches ${VAR} and $VAR references inside values.
var varRefRegex = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// MakeConf holds the effective key/value configuration read from a
// make.conf-style file.
type MakeConf struct {
	values map[string]string
}

// LoadMakeConf reads and parses a make.conf file.
func LoadMakeConf(path string) (*MakeConf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseMakeConf(f)
}

// ParseMakeConf parses make.conf content: one KEY="value" assignment per
// line, # comments, blank lines ignored. References to previously assigned
// variables (${VAR} or $VAR) are expanded; unknown references expand to the
// empty string.
func ParseMakeConf(r io.Reader) (*MakeConf, error) {
	mc := &MakeConf{values: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		mc.values[key] = mc.expand(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mc, nil
}

// expand substitutes references to already-parsed variables.
func (m *MakeConf) expand(value string) string {
	return varRefRegex.ReplaceAllStringFunc(value, func(ref string) string {
		name := strings.TrimPrefix(ref, "$")
		name = strings.Trim(name, "{}")
		return m.values[name]
	})
}

// Get returns the value for key, or the empty string if unset.
func (m *MakeConf) Get(key string) string {
	return m.values[key]
}

// Arch returns the configured architecture keyword (the ARCH variable).
func (m *MakeConf) Arch() string {
	return m.Get("ARCH")
}
