package baseline

import (
	"fmt"
	"strings"
)

// Method identifies a baseline algorithm.
type Method int

const (
	MethodSNIP Method = iota
	MethodALS
	MethodPoly
	MethodRollingBall
	MethodModPoly
	MethodAnchor
)

var methodTags = map[Method]string{
	MethodSNIP:        "snip",
	MethodALS:         "als",
	MethodPoly:        "poly",
	MethodRollingBall: "rolling_ball",
	MethodModPoly:     "modpoly",
	MethodAnchor:      "anchor",
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{MethodSNIP, MethodALS, MethodPoly, MethodRollingBall, MethodModPoly, MethodAnchor}
}

// String returns the method's tag, e.g. "rolling_ball".
func (m Method) String() string {
	if tag, ok := methodTags[m]; ok {
		return tag
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a tag to its Method. Matching ignores case and
// surrounding whitespace.
func ParseMethod(tag string) (Method, error) {
	want := strings.ToLower(strings.TrimSpace(tag))
	for m, t := range methodTags {
		if t == want {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, tag)
}
