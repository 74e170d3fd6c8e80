package sysctl

import "strings"

// Root is the procfs directory under which kernel tunables live.
const Root = "/proc/sys"

// Prefixes is a whitelist of canonical path prefixes limiting which settings
// get applied. An empty list permits everything.
type Prefixes []string

// NewPrefixes canonicalizes raw prefix arguments once, at startup. Each
// prefix goes through the same Normalize transform as setting names and is
// rooted under /proc/sys when not already.
func NewPrefixes(raw []string) Prefixes {
	out := make(Prefixes, 0, len(raw))
	for _, p := range raw {
		p = Normalize(p)
		if !strings.HasPrefix(p, Root) {
			p = Root + "/" + strings.TrimPrefix(p, "/")
		}
		out = append(out, p)
	}
	return out
}

// Match reports whether a setting name passes the whitelist. Both the name
// and each prefix are compared with the /proc/sys root stripped, so rooted
// and unrooted spellings are equivalent. The comparison is a plain byte-wise
// prefix test, not segment-aware: "net" also matches "network".
func (ps Prefixes) Match(name string) bool {
	if len(ps) == 0 {
		return true
	}
	name = stripRoot(name)
	for _, p := range ps {
		if strings.HasPrefix(name, stripRoot(p)) {
			return true
		}
	}
	return false
}

func stripRoot(p string) string {
	if t, ok := strings.CutPrefix(p, Root+"/"); ok {
		return t
	}
	return strings.TrimPrefix(p, Root)
}
