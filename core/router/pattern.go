package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPattern   = errors.New("router: invalid route path pattern")
	ErrDuplicateParam   = errors.New("router: duplicate parameter name")
	ErrWildcardPosition = errors.New("router: wildcard must be the last segment")
)

// segment is one compiled path segment. A non-empty param name marks a
// capture segment; optional captures may be omitted by the request path.
type segment struct {
	literal  string
	param    string
	optional bool
}

// pattern is a compiled path matcher over slash-separated segments with
// support for :name captures, :name? optional trailing captures, and a
// trailing * wildcard.
type pattern struct {
	segments []segment
	wildcard bool
}

// compile parses a path pattern. The pattern must start with "/".
func compile(pat string) (*pattern, error) {
	if pat == "" || pat[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pat)
	}

	p := &pattern{}
	seen := map[string]bool{}

	for i, part := range splitPath(pat) {
		if p.wildcard {
			return nil, fmt.Errorf("%w: %q", ErrWildcardPosition, pat)
		}
		switch {
		case part == "*":
			p.wildcard = true
		case strings.HasPrefix(part, ":"):
			name := strings.TrimPrefix(part, ":")
			optional := strings.HasSuffix(name, "?")
			name = strings.TrimSuffix(name, "?")
			if name == "" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pat)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pat)
			}
			seen[name] = true
			p.segments = append(p.segments, segment{param: name, optional: optional})
		case part == "" && i > 0:
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pat)
		default:
			p.segments = append(p.segments, segment{literal: part})
		}
	}
	return p, nil
}

// match tests a request path against the pattern. On success it returns the
// captured parameters; segments with no captured value are omitted from the
// map, never inserted as empty strings.
func (p *pattern) match(path string) (map[string]string, bool) {
	parts := splitPath(path)

	if !p.wildcard && len(parts) > len(p.segments) {
		return nil, false
	}

	params := map[string]string{}
	for i, seg := range p.segments {
		if i >= len(parts) {
			// Remaining pattern segments must all be optional captures.
			for _, rest := range p.segments[i:] {
				if rest.param == "" || !rest.optional {
					return nil, false
				}
			}
			break
		}
		if seg.param != "" {
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// splitPath splits a path into its non-empty segments. "/" and "" both yield
// zero segments, so a trailing slash does not affect matching.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
