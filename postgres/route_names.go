package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RouteName is a row of the route_names table.
type RouteName struct {
	Name      string `gorm:"primaryKey"`
	URI       string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName implements gorm's schema.Tabler.
func (RouteName) TableName() string { return "route_names" }

// RouteNameStore keeps named routes in PostgreSQL.
// RouteNameStore satisfies router.NameStore.
type RouteNameStore struct {
	db *gorm.DB
}

// NewRouteNameStore constructs a RouteNameStore on the connection db.
// The route_names table must exist; Connect migrates it.
func NewRouteNameStore(db *gorm.DB) RouteNameStore {
	return RouteNameStore{db: db}
}

// Get retrieves the URI stored under name.
// If none is, Get returns waypoint.ErrNotExist.
func (s RouteNameStore) Get(ctx context.Context, name string) (string, error) {
	var rn RouteName
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&rn).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", fmt.Errorf("%w: route %q", waypoint.ErrNotExist, name)
	case err != nil:
		return "", fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	return rn.URI, nil
}

// Set stores uri under name, replacing what was there.
func (s RouteNameStore) Set(ctx context.Context, name, uri string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"uri", "updated_at"}),
		}).
		Create(&RouteName{Name: name, URI: uri}).
		Error
	if err != nil {
		return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	return nil
}
