package router_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/router"
)

func TestRegistryResolve(t *testing.T) {
	// Arrange
	reg := router.NewRegistry().
		Register("Home", func() router.Controller {
			return router.Actions{"index": func(http.ResponseWriter, *http.Request, router.Params) {}}
		}).
		Register("Nil", func() router.Controller { return nil }).
		Register("Empty", nil)

	// Act
	h, err := reg.Resolve("Home", "index")

	// Assert
	require.Nil(t, err)
	require.NotNil(t, h)

	for _, tc := range [][2]string{{"Home", "show"}, {"Away", "index"}, {"Nil", "index"}, {"Empty", "index"}} {
		// Act
		h, err = reg.Resolve(tc[0], tc[1])

		// Assert
		require.Nil(t, h)
		require.True(t, errors.Is(err, router.ErrUnresolvable), tc)
	}

	require.Equal(t, []string{"Empty", "Home", "Nil"}, reg.Classes())
}

func TestRegistryNil(t *testing.T) {
	// Arrange
	var reg *router.Registry

	// Act
	_, err := reg.Resolve("Home", "index")

	// Assert
	require.ErrorIs(t, err, router.ErrUnresolvable)
}
