/*
The middleware package defines what a middleware is in waypoint and a set of basic middlewares.

An [Adapter] receives the next [net/http.Handler] in a chain and decides whether, and when, to call it.
[Chain] composes adapters around a terminal handler so the first adapter runs first.
The router queues adapters per route with [github.com/xy-planning-network/waypoint/http/router.Router.Middleware].

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - InjectSession
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.InjectIPAddress(log),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env, log),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
	}
*/
package middleware
