package postgres_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/postgres"
)

type DBTestSuite struct {
	suite.Suite

	store postgres.RouteNameStore
}

func TestRunSuite(t *testing.T) {
	err := godotenv.Load("../.env")
	var pe *fs.PathError
	if err != nil && !errors.As(err, &pe) {
		t.Fatal(err)
	}

	if os.Getenv("DATABASE_TEST_NAME") == "" {
		t.Skip("DATABASE_TEST_NAME is not set")
	}

	suite.Run(t, new(DBTestSuite))
}

func (suite *DBTestSuite) SetupSuite() {
	cfg := postgres.CxnConfig{
		IsTestDB: true,
		URL:      os.Getenv("DATABASE_TEST_URL"),
		Host:     waypoint.EnvVarOrString("DATABASE_TEST_HOST", "localhost"),
		Port:     waypoint.EnvVarOrString("DATABASE_TEST_PORT", "5432"),
		Name:     os.Getenv("DATABASE_TEST_NAME"),
		User:     waypoint.EnvVarOrString("DATABASE_TEST_USER", "postgres"),
		Password: os.Getenv("DATABASE_TEST_PASSWORD"),
		SSLMode:  os.Getenv("DATABASE_TEST_SSLMODE"),
	}

	db, err := postgres.Connect(cfg, waypoint.Testing)
	suite.Require().Nil(err)

	suite.store = postgres.NewRouteNameStore(db)
	suite.T().Cleanup(func() {
		suite.Require().Nil(postgres.WipeDB(db, "public"))
	})
}

func (suite *DBTestSuite) TestRouteNameStore() {
	// Arrange
	ctx := context.Background()

	// Act
	_, err := suite.store.Get(ctx, "missing")

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrNotExist)

	// Act
	suite.Require().Nil(suite.store.Set(ctx, "home", "/"))
	suite.Require().Nil(suite.store.Set(ctx, "home", "/app/home"))
	uri, err := suite.store.Get(ctx, "home")

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal("/app/home", uri)
}
