// Package featureflags evaluates process-wide feature flags from config.
// Flags select between the legacy admin client variants' route shapes, so
// they are resolved once at route registration, not per request.
package featureflags

import "strings"

// Manager evaluates feature flags defined in a simple list.
// Example: "legacy_routes=on,post_action_put=off". A bare name counts as on.
type Manager struct {
	flags map[string]bool
}

// NewManager creates a feature-flag manager from a comma-separated config string.
func NewManager(raw string) *Manager {
	out := make(map[string]bool)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		name = normalize(name)
		if name == "" {
			continue
		}
		if !found {
			out[name] = true
			continue
		}

		switch normalize(value) {
		case "on", "true", "1":
			out[name] = true
		case "off", "false", "0":
			out[name] = false
		}
	}

	return &Manager{flags: out}
}

// Enabled returns whether a flag is set to an enabled value.
func (m *Manager) Enabled(name string) bool {
	if m == nil {
		return false
	}
	return m.flags[normalize(name)]
}

// Raw returns a copy of configured flags.
func (m *Manager) Raw() map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
