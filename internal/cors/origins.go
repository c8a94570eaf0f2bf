package cors

import (
	"fmt"
	"net/url"
	"strings"
)

// originPattern matches every subdomain of a host for one scheme,
// e.g. "https://*.example.com".
type originPattern struct {
	scheme string
	suffix string // ".example.com", port included when present
}

func (p originPattern) match(scheme, host string) bool {
	return scheme == p.scheme &&
		len(host) > len(p.suffix) &&
		strings.HasSuffix(host, p.suffix)
}

// originSet holds the explicit origins of a policy.
type originSet struct {
	exact    map[string]struct{}
	patterns []originPattern
}

func (s originSet) contains(origin string) bool {
	origin = strings.ToLower(origin)
	if _, ok := s.exact[origin]; ok {
		return true
	}

	if len(s.patterns) == 0 {
		return false
	}

	scheme, host, ok := splitOrigin(origin)
	if !ok {
		return false
	}
	for _, p := range s.patterns {
		if p.match(scheme, host) {
			return true
		}
	}
	return false
}

// parseOrigins validates configured origins and reports whether the
// wildcard was present. "*" cannot be mixed with explicit origins.
func parseOrigins(origins []string) (bool, originSet, error) {
	set := originSet{exact: make(map[string]struct{}, len(origins))}

	if len(origins) == 0 {
		return false, set, fmt.Errorf("%w: at least one origin is required", ErrInvalidPolicy)
	}

	anyOrigin := false
	for _, raw := range origins {
		o := strings.ToLower(strings.TrimSpace(raw))
		if o == wildcard {
			anyOrigin = true
			continue
		}

		scheme, host, ok := splitOrigin(o)
		if !ok {
			return false, set, fmt.Errorf("%w: malformed origin %q", ErrInvalidPolicy, raw)
		}

		if rest, isPattern := strings.CutPrefix(host, "*."); isPattern {
			if _, _, ok := splitOrigin(scheme + "://" + rest); !ok || strings.Contains(rest, "*") {
				return false, set, fmt.Errorf("%w: malformed origin pattern %q", ErrInvalidPolicy, raw)
			}
			set.patterns = append(set.patterns, originPattern{scheme: scheme, suffix: "." + rest})
			continue
		}

		if strings.Contains(host, "*") {
			return false, set, fmt.Errorf("%w: wildcard only allowed as leading label in %q", ErrInvalidPolicy, raw)
		}
		set.exact[scheme+"://"+host] = struct{}{}
	}

	if anyOrigin && (len(set.exact) > 0 || len(set.patterns) > 0) {
		return false, set, fmt.Errorf("%w: %q cannot be combined with explicit origins", ErrInvalidPolicy, wildcard)
	}

	return anyOrigin, set, nil
}

// splitOrigin breaks a serialized origin into scheme and host[:port].
// Paths, queries, fragments and user info are not part of an origin.
func splitOrigin(origin string) (scheme, host string, ok bool) {
	scheme, host, found := strings.Cut(origin, "://")
	if !found || scheme == "" || host == "" {
		return "", "", false
	}

	host = strings.TrimSuffix(host, "/")

	// url.Parse rejects '*' in hosts; validate patterns without it
	probe := strings.Replace(host, "*.", "wildcard.", 1)
	u, err := url.Parse(scheme + "://" + probe)
	if err != nil || u.Host != probe || u.User != nil ||
		u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return "", "", false
	}

	return scheme, host, true
}
