package router_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/router"
)

func TestCompile(t *testing.T) {
	for _, tc := range []struct {
		name     string
		template string
		expected string
		matches  []string
		misses   []string
	}{
		{"Literal", "/about", `^/about$`, []string{"/about"}, []string{"/about/", "/About", "/about/us"}},
		{"Root", "/", `^/$`, []string{"/"}, []string{"", "/x"}},
		{"Default-Param", "/user/{id}", `^/user/([^/]+)$`, []string{"/user/99", "/user/abc"}, []string{"/user/", "/user/1/2"}},
		{"Regex-Param", "/user/{id:[0-9]+}", `^/user/([0-9]+)$`, []string{"/user/99"}, []string{"/user/abc"}},
		{"Many-Params", "/{a}/{b:[a-z]+}", `^/([^/]+)/([a-z]+)$`, []string{"/1/x"}, []string{"/1/2"}},
		{"Malformed-Placeholder", "/user/{id", `^/user/{id$`, []string{"/user/{id"}, []string{"/user/1"}},
		{"Metacharacters", "/file.json", `^/file.json$`, []string{"/file.json", "/fileXjson"}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rx, err := router.Compile(tc.template)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, rx.String())
			for _, m := range tc.matches {
				require.True(t, rx.MatchString(m), m)
			}
			for _, m := range tc.misses {
				require.False(t, rx.MatchString(m), m)
			}
		})
	}
}

func TestCompileEscaped(t *testing.T) {
	// Act
	rx, err := router.CompileEscaped("/files/{name}.json")

	// Assert
	require.Nil(t, err)
	require.True(t, rx.MatchString("/files/report.json"))
	require.False(t, rx.MatchString("/files/reportXjson"))
}

func TestCompileInvalid(t *testing.T) {
	// Act
	rx, err := router.Compile("/user/{id:[0-9}")

	// Assert
	require.Nil(t, rx)
	require.True(t, errors.Is(err, waypoint.ErrNotValid))
}
