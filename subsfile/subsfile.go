// Package subsfile loads substitution-map overrides from YAML files.
//
// An override file is a flat YAML mapping from letter to digit string:
//
//	l: 1
//	t: 7
//	d: "17"
//
// Values may be written quoted or as bare numbers; both load as the digit
// string. Key and value validation is left to leetscan.Build so the rules
// live in one place.
package subsfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"leetscan"
)

// Load reads override entries from path. An empty path means no overrides.
// Unreadable or malformed files fail wrapping leetscan.ErrInvalidMapping.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", leetscan.ErrInvalidMapping, err)
	}
	// Decode into yaml.Node values: a bare scalar like 17 would not
	// unmarshal into a plain string, but its raw text is what we want.
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", leetscan.ErrInvalidMapping, err)
	}
	overrides := make(map[string]string, len(raw))
	for key, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: value for %q is not a scalar", leetscan.ErrInvalidMapping, key)
		}
		overrides[key] = node.Value
	}
	return overrides, nil
}
