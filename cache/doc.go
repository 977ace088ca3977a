// Package cache keeps named routes in Redis, so they are shared by every process serving an application.
package cache
