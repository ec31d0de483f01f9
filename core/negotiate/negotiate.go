package negotiate

import (
	"strconv"
	"strings"
)

// MediaRange is one parsed unit of an Accept header: a media type pattern
// with its preference weight and its position in the original header.
// Ranges are ephemeral, produced and discarded per negotiation call.
type MediaRange struct {
	Type     string
	Subtype  string
	Quality  float64
	Position int
}

// Result is the outcome of a negotiation. "Not acceptable" is data, not an
// error: Acceptable is false and MediaType falls back to the route default,
// leaving the caller to decide severity.
type Result struct {
	MediaType  string
	Quality    float64
	Acceptable bool
}

// Specificity ranks for matching a range against a concrete media type.
const (
	matchNone     = 0
	matchWildcard = 1 // */*
	matchType     = 2 // type/*
	matchExact    = 3 // type/subtype
)

// Negotiate selects the best representation for an Accept header from the
// route's supported media types, by RFC 7231 quality rules.
//
// A missing, empty, or whitespace-only header, or an empty supported list,
// yields the default at quality 1. Otherwise the highest-quality eligible
// (range, representation) pair wins; ties break by the earliest range in the
// header, then by supported-list order. When nothing is eligible the default
// is returned with quality 0 and Acceptable false.
//
// Pure function, safe for concurrent use.
func Negotiate(accept string, supported []string, def string) Result {
	if strings.TrimSpace(accept) == "" || len(supported) == 0 {
		return Result{MediaType: def, Quality: 1.0, Acceptable: true}
	}

	ranges := ParseAccept(accept)
	if len(ranges) == 0 {
		return Result{MediaType: def, Quality: 1.0, Acceptable: true}
	}

	var (
		best        string
		bestQuality = -1.0
		bestPos     = -1
	)
	for _, mt := range supported {
		mtType, mtSubtype := splitMediaType(mt)
		for _, r := range ranges {
			if r.Quality <= 0 {
				continue // q=0 marks the range explicitly unacceptable
			}
			if match(r, mtType, mtSubtype) == matchNone {
				continue
			}
			if r.Quality > bestQuality || (r.Quality == bestQuality && r.Position < bestPos) {
				best = mt
				bestQuality = r.Quality
				bestPos = r.Position
			}
		}
	}

	if best == "" {
		return Result{MediaType: def, Quality: 0, Acceptable: false}
	}
	return Result{MediaType: best, Quality: bestQuality, Acceptable: true}
}

// ParseAccept parses an Accept header into media ranges. Units are split on
// commas, parameters on semicolons. A malformed or out-of-range q parameter
// does not disqualify the range; it is discarded and the weight stays 1.0.
func ParseAccept(header string) []MediaRange {
	parts := strings.Split(header, ",")
	ranges := make([]MediaRange, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ";")
		mtType, mtSubtype := splitMediaType(fields[0])
		if mtType == "" {
			continue
		}

		r := MediaRange{
			Type:     mtType,
			Subtype:  mtSubtype,
			Quality:  1.0,
			Position: len(ranges),
		}
		for _, field := range fields[1:] {
			key, val, ok := strings.Cut(field, "=")
			if !ok || strings.TrimSpace(key) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil && q >= 0 && q <= 1 {
				r.Quality = q
			}
		}
		ranges = append(ranges, r)
	}
	return ranges
}

func match(r MediaRange, mtType, mtSubtype string) int {
	switch {
	case r.Type == "*" && r.Subtype == "*":
		return matchWildcard
	case r.Type == mtType && r.Subtype == "*":
		return matchType
	case r.Type == mtType && r.Subtype == mtSubtype:
		return matchExact
	default:
		return matchNone
	}
}

// splitMediaType splits "type/subtype" after trimming whitespace and any
// trailing parameters, lower-casing both halves for comparison. A bare token
// without a slash is treated as "token/*".
func splitMediaType(mt string) (string, string) {
	if idx := strings.IndexByte(mt, ';'); idx >= 0 {
		mt = mt[:idx]
	}
	mt = strings.ToLower(strings.TrimSpace(mt))
	if mt == "" {
		return "", ""
	}
	if t, s, ok := strings.Cut(mt, "/"); ok {
		return t, s
	}
	return mt, "*"
}
