package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

// defaultParamPattern matches a single path segment.
const defaultParamPattern = `[^/]+`

// placeholderRegexp finds {name} and {name:pattern} in a path template.
var placeholderRegexp = regexp.MustCompile(`\{([a-zA-Z0-9_]+)(?::([^}]+))?\}`)

// Compile turns a path template into a matcher anchored at both ends.
//
// Each {name} placeholder becomes a group capturing one path segment
// and each {name:pattern} placeholder becomes a group capturing pattern.
// Names are discarded: captures are positional.
//
// Text outside placeholders is used as is, so regular expression metacharacters
// in it keep their meaning. Use CompileEscaped to match such text literally.
func Compile(template string) (*regexp.Regexp, error) {
	return compile(template, false)
}

// CompileEscaped is Compile, except text outside placeholders matches literally.
func CompileEscaped(template string) (*regexp.Regexp, error) {
	return compile(template, true)
}

func compile(template string, escape bool) (*regexp.Regexp, error) {
	lit := func(s string) string {
		if escape {
			return regexp.QuoteMeta(s)
		}
		return s
	}

	var b strings.Builder
	b.WriteString("^")

	last := 0
	for _, loc := range placeholderRegexp.FindAllStringSubmatchIndex(template, -1) {
		b.WriteString(lit(template[last:loc[0]]))

		pattern := defaultParamPattern
		if loc[4] >= 0 {
			pattern = template[loc[4]:loc[5]]
		}

		b.WriteString("(" + pattern + ")")
		last = loc[1]
	}

	b.WriteString(lit(template[last:]))
	b.WriteString("$")

	rx, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %s", waypoint.ErrNotValid, template, err)
	}

	return rx, nil
}
