package router

import (
	"fmt"
	"strings"
)

// segment is one precomputed element of a route pattern: either a literal
// that must match exactly, or a named capture that binds any non-empty path
// token.
type segment struct {
	literal string
	capture string // param name; empty for literal segments
}

// Pattern is an immutable, pre-parsed route path. Parsing happens once at
// registration so matching is a plain segment walk per request.
type Pattern struct {
	raw      string
	segments []segment
}

// ParsePattern parses a route path into a Pattern. Capture segments use
// either the ":name" or the "{name}" marker:
//
//	/users/:id
//	/users/{id}/posts/{post}
//
// Param names must be unique within one pattern.
func ParsePattern(raw string) (Pattern, error) {
	if raw == "" || raw[0] != '/' {
		return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
	}

	p := Pattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	seen := map[string]struct{}{}
	for _, tok := range strings.Split(raw[1:], "/") {
		seg, err := parseSegment(tok)
		if err != nil {
			return Pattern{}, err
		}
		if seg.capture != "" {
			if _, dup := seen[seg.capture]; dup {
				return Pattern{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, seg.capture, raw)
			}
			seen[seg.capture] = struct{}{}
		}
		p.segments = append(p.segments, seg)
	}

	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error. Intended for
// static route declarations at startup.
func MustParsePattern(raw string) Pattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(tok string) (segment, error) {
	switch {
	case strings.HasPrefix(tok, ":"):
		name := tok[1:]
		if name == "" {
			return segment{}, fmt.Errorf("%w: empty param name", ErrInvalidPattern)
		}
		return segment{capture: name}, nil
	case strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}"):
		name := tok[1 : len(tok)-1]
		if name == "" {
			return segment{}, fmt.Errorf("%w: empty param name", ErrInvalidPattern)
		}
		return segment{capture: name}, nil
	default:
		return segment{literal: tok}, nil
	}
}

// String returns the original pattern text.
func (p Pattern) String() string { return p.raw }

// NumParams returns the number of capture segments in the pattern.
func (p Pattern) NumParams() int {
	n := 0
	for _, seg := range p.segments {
		if seg.capture != "" {
			n++
		}
	}
	return n
}

// Match reports whether the concrete path matches the pattern and, if so,
// returns the captured params. A match requires equal segment counts and,
// per segment, either an exact case-sensitive literal match or a capture
// binding a non-empty token. Captures never span a path separator and there
// is no backtracking, so the cost is linear in the number of segments.
func (p Pattern) Match(path string) (map[string]string, bool) {
	if path == "" {
		path = "/"
	}
	if path[0] != '/' {
		return nil, false
	}

	// Root pattern matches only the root path.
	if len(p.segments) == 0 {
		if path == "/" {
			return nil, true
		}
		return nil, false
	}
	if path == "/" {
		return nil, false
	}

	toks := strings.Split(path[1:], "/")
	if len(toks) != len(p.segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range p.segments {
		tok := toks[i]
		if seg.capture != "" {
			if tok == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, p.NumParams())
			}
			params[seg.capture] = tok
			continue
		}
		if seg.literal != tok {
			return nil, false
		}
	}

	return params, true
}

// moreSpecific reports whether p should win over q when both match the same
// concrete path: literal segments outrank captures, evaluated left to right.
// Both patterns must have equal segment counts; the caller guarantees this
// since both matched the same path.
func (p Pattern) moreSpecific(q Pattern) bool {
	for i := range p.segments {
		if i >= len(q.segments) {
			break
		}
		pLit := p.segments[i].capture == ""
		qLit := q.segments[i].capture == ""
		if pLit != qLit {
			return pLit
		}
	}
	return false
}
