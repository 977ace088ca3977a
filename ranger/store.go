package ranger

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/waypoint"
)

// A StoreKind names where a Ranger keeps named routes.
type StoreKind string

const (
	MemoryStore   StoreKind = "memory"
	PostgresStore StoreKind = "postgres"
	RedisStore    StoreKind = "redis"
	SessionStore  StoreKind = "session"

	// customStore marks a store supplied with WithNameStore.
	customStore StoreKind = "custom"
)

// NewStoreKind parses val, ignoring case.
func NewStoreKind(val string) (StoreKind, error) {
	kind := StoreKind(strings.ToLower(strings.TrimSpace(val)))
	if err := kind.Valid(); err != nil {
		return "", err
	}

	return kind, nil
}

func (k StoreKind) String() string { return string(k) }

func (k StoreKind) Valid() error {
	switch k {
	case MemoryStore, PostgresStore, RedisStore, SessionStore:
		return nil
	default:
		return fmt.Errorf("%w: route store %q", waypoint.ErrNotValid, string(k))
	}
}
