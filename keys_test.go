package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "waypoint context key: RequestIDKey", waypoint.RequestIDKey.String())
}
