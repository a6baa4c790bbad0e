package github

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseLastPage extracts the page number of the rel="last" entry of an RFC
// 8288 Link header. ok is false when the header is empty or has no last
// entry. Entries may appear in any order with arbitrary whitespace.
func ParseLastPage(header string) (page int, ok bool, err error) {
	for _, entry := range strings.Split(header, ",") {
		target, params, found := strings.Cut(entry, ";")
		if !found {
			continue
		}
		if !hasRel(params, "last") {
			continue
		}

		target = strings.TrimSpace(target)
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			return 0, false, fmt.Errorf("malformed link target %q", target)
		}
		u, err := url.Parse(target[1 : len(target)-1])
		if err != nil {
			return 0, false, fmt.Errorf("malformed link target %q: %w", target, err)
		}
		raw := u.Query().Get("page")
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, false, fmt.Errorf("invalid page %q in last link", raw)
		}
		return n, true, nil
	}
	return 0, false, nil
}

func hasRel(params, want string) bool {
	for _, p := range strings.Split(params, ";") {
		key, val, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}
		for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(val), `"`)) {
			if strings.EqualFold(rel, want) {
				return true
			}
		}
	}
	return false
}
