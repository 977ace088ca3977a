/*
Package logger provides logging functionality to a waypoint app by defining the required behavior in [Logger]
and providing an implementation of it with [WaypointLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if a [WaypointLogger] is initialized with [LogLevelWarn],
only [*WaypointLogger.Warn], [*WaypointLogger.Error], and [*WaypointLogger.Fatal] produce messages.

Log messages emitted by [WaypointLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [DEBUG] waypoint/http/router/dispatch.go:43 'matched GET /user/{id}' log_context: {"data":{"params":["99"]}}

# SentryLogger

When the SENTRY_DSN environment variable is set, [NewLogger] wraps the [WaypointLogger] in a [SentryLogger],
which additionally ships the error in a [LogContext] to Sentry for warnings and above.
*/
package logger
