package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/postgres"
)

func TestCxnConfigDSN(t *testing.T) {
	for _, tc := range []struct {
		name     string
		cfg      postgres.CxnConfig
		expected string
	}{
		{
			"URL",
			postgres.CxnConfig{URL: "postgres://u:p@db:5432/waypoint", Host: "ignored"},
			"postgres://u:p@db:5432/waypoint",
		},
		{
			"Default-SSLMode",
			postgres.CxnConfig{Host: "localhost", Port: "5432", Name: "waypoint", User: "u", Password: "p"},
			"host=localhost port=5432 dbname=waypoint user=u password=p sslmode=prefer",
		},
		{
			"SSLMode",
			postgres.CxnConfig{Host: "db", Port: "6543", Name: "w", User: "u", Password: "p", SSLMode: "disable"},
			"host=db port=6543 dbname=w user=u password=p sslmode=disable",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.cfg.DSN())
		})
	}
}

func TestRouteNameTableName(t *testing.T) {
	require.Equal(t, "route_names", postgres.RouteName{}.TableName())
}
