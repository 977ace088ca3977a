package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/cache"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/http/session"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/postgres"
)

const (
	// Routing defaults
	basePathEnvVar     = "BASE_PATH"
	corsOriginEnvVar   = "CORS_ORIGIN"
	routeStoreEnvVar   = "ROUTE_STORE"
	defaultRouteStore  = MemoryStore
	environmentEnvVar  = "ENVIRONMENT"
	logLevelEnvVar     = "LOG_LEVEL"
	defaultLogLevel    = logger.LogLevelInfo
	redisURLEnvVar     = "REDIS_URL"
	defaultRedisURL    = "redis://localhost:6379/0"
	redisPassEnvVar    = "REDIS_PASSWORD"
	sessionRedisEnvVar = "SESSION_REDIS_ADDR"

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	sessionNameEnvVar       = "SESSION_NAME"
	defaultSessionName      = "waypoint"
	defaultSessionMaxAge    = 3600 * 24 * 7

	// Test defaults
	dbTestHostEnvVar     = "DATABASE_TEST_HOST"
	defaultDBTestHost    = "localhost"
	dbTestNameEnvVar     = "DATABASE_TEST_NAME"
	dbTestPassEnvVar     = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar     = "DATABASE_TEST_PORT"
	defaultDBTestPort    = "5432"
	dbTestUserEnvVar     = "DATABASE_TEST_USER"
	dbTestSSLModeEnvVar  = "DATABASE_TEST_SSLMODE"
	defaultDBTestSSLMode = "prefer"
)

// defaultOpts reads configuration from environment variables.
// Its followup fills in whatever options left unset.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		WithBasePath(os.Getenv(basePathEnvVar)),
		func(rng *Ranger) (OptFollowup, error) {
			kind, err := NewStoreKind(waypoint.EnvVarOrString(routeStoreEnvVar, defaultRouteStore.String()))
			if err != nil {
				return nil, err
			}

			rng.storeKind = kind
			return rng.fillDefaults, nil
		},
	}
}

func (r *Ranger) fillDefaults() error {
	if r.l == nil {
		r.l = defaultLogger(r.env)
	}

	if r.registry == nil {
		r.registry = router.NewRegistry()
	}

	if r.storeKind == SessionStore && r.sessions == nil {
		store, err := defaultSessionStore(r.env)
		if err != nil {
			return err
		}
		r.sessions = store
	}

	if r.names == nil && r.storeKind != SessionStore {
		names, closer, err := defaultNameStore(r.env, r.storeKind)
		if err != nil {
			return err
		}

		r.names = names
		if closer != nil {
			r.closers = append(r.closers, closer)
		}
	}

	if r.everyReq == nil {
		r.everyReq = defaultMiddlewares(r.env, r.l, r.sessions)
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}

	r.l.Debug(fmt.Sprintf("using %s route store", r.storeKind), nil)

	return nil
}

// defaultLogger constructs a logger.Logger logging at the level LOG_LEVEL sets.
func defaultLogger(env waypoint.Environment) logger.Logger {
	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(waypoint.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLevel)),
	)
}

// defaultMiddlewares constructs the stack every request passes through.
// A nil sessions skips injecting the session.
func defaultMiddlewares(env waypoint.Environment, l logger.Logger, sessions session.SessionStorer) []middleware.Adapter {
	mws := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.InjectIPAddress(l),
		middleware.RequestID(),
		middleware.LogRequest(l),
		middleware.CORS(strings.Split(os.Getenv(corsOriginEnvVar), ",")...),
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.InjectSession(sessions),
	}

	if env.IsProduction() {
		mws = append(mws, middleware.ForceHTTPS(env, l))
	}

	return mws
}

// defaultNameStore connects to the store kind names,
// returning a func closing that connection, if there is one.
func defaultNameStore(env waypoint.Environment, kind StoreKind) (router.NameStore, func() error, error) {
	switch kind {
	case MemoryStore:
		return router.NewMemoryStore(), nil, nil

	case RedisStore:
		rn, err := cache.NewRouteNamesFromURL(
			waypoint.EnvVarOrString(redisURLEnvVar, defaultRedisURL),
			os.Getenv(redisPassEnvVar),
		)
		if err != nil {
			return nil, nil, err
		}

		return rn, rn.Close, nil

	case PostgresStore:
		db, err := postgres.Connect(NewPostgresConfig(env), env)
		if err != nil {
			return nil, nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
		}

		return postgres.NewRouteNameStore(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: no default store for %q", waypoint.ErrNotValid, kind)
	}
}

// NewPostgresConfig constructs a postgres.CxnConfig appropriate to the given environment.
// Confer the DATABASE env vars for usage.
func NewPostgresConfig(env waypoint.Environment) postgres.CxnConfig {
	url := os.Getenv(dbURLEnvVar)
	switch {
	case env.IsTesting():
		return postgres.CxnConfig{
			Host:     waypoint.EnvVarOrString(dbTestHostEnvVar, defaultDBTestHost),
			IsTestDB: true,
			Name:     os.Getenv(dbTestNameEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			Port:     waypoint.EnvVarOrString(dbTestPortEnvVar, defaultDBTestPort),
			SSLMode:  waypoint.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBTestSSLMode),
			User:     os.Getenv(dbTestUserEnvVar),
		}

	case url == "":
		return postgres.CxnConfig{
			Host:     waypoint.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     waypoint.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  waypoint.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}

	default:
		return postgres.CxnConfig{URL: url}
	}
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on these env vars:
//   - SESSION_NAME
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//   - SESSION_REDIS_ADDR, to keep sessions in Redis instead of cookies
//
// Both KEY env vars be valid hex encoded values; cf. [encoding/hex].
func defaultSessionStore(env waypoint.Environment) (session.SessionStorer, error) {
	cfg := session.Config{
		AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
		EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
		Env:         env,
		SessionName: waypoint.EnvVarOrString(sessionNameEnvVar, defaultSessionName),
	}

	args := []session.ServiceOpt{session.WithMaxAge(defaultSessionMaxAge)}
	if addr := os.Getenv(sessionRedisEnvVar); addr != "" {
		args = append(args, session.WithRedis(addr, os.Getenv(redisPassEnvVar)))
	} else {
		args = append(args, session.WithCookie())
	}

	return session.NewStoreService(cfg, args...)
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := waypoint.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	host := os.Getenv(hostEnvVar)
	srv := &http.Server{
		Addr:         host + port,
		IdleTimeout:  waypoint.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  waypoint.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: waypoint.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
