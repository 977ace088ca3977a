/*
Package ranger initializes and manages a waypoint app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New],
passing a function registering the app's routes on a [router.Router].
Each request gets a new [router.Router] bound to it,
so named routes can be kept in that request's session.

[*Ranger.Guide] begins a waypoint app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000).
Besides the app's routes, the web server answers [HealthPath].

Stop that web server with [*Ranger.Shutdown]
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a waypoint app through environment variables
and by passing [RangerOption] to [New].
For environment variables, required values can be discovered by inspecting the errors [New] returns.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_PATH: the path every route is mounted under
  - CORS_ORIGIN: comma separated origins allowed to make cross-origin requests; unset disables CORS
  - DATABASE_HOST: the host the database is running on; default: localhost
  - DATABASE_NAME: the name of the database
  - DATABASE_PORT: the port the database is listening on; default: 5432
  - DATABASE_URL: the fully-qualified connection string for connecting to the database; replaces all other DATABASE_* env vars
  - DATABASE_USER: the user for authenticating a connection to the database
  - DATABASE_PASSWORD: the password for authenticating a connection to the database
  - ENVIRONMENT: the environment the application is running in; cf. [waypoint.Environment]
  - HOST: the host the application listens on; default: all interfaces
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - REDIS_URL: the Redis server named routes are kept in when ROUTE_STORE is redis; default: redis://localhost:6379/0
  - REDIS_PASSWORD: the password for authenticating to Redis
  - ROUTE_STORE: where named routes are kept: memory, session, redis or postgres; default: memory
  - SENTRY_DSN: the Sentry project errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SESSION_NAME: the name of the session cookie; default: waypoint
  - SESSION_REDIS_ADDR: the host:port of a Redis server to keep sessions in instead of cookies
*/
package ranger
