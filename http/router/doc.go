/*
Package router matches HTTP requests against path templates and dispatches them to actions.

Routes are registered per HTTP method with a path template.
A template is literal text with placeholders:
{id} captures one path segment and {id:[0-9]+} captures what the expression matches.
Captures reach the action positionally as [Params].

	rt := router.New(router.WithBasePath("/app"), router.WithRegistry(reg))
	rt.Namespace("admin")
	rt.Group("/admin", func(rt *router.Router) {
		rt.Middleware(requireAdmin).Get("/users/{id:[0-9]+}", router.Ref("UserController@show"))
	})
	rt.SetError("/404", http.StatusNotFound, notFound)

Routes are tried in the order registered and the first match wins.
Middlewares queued with [Router.Middleware] attach to the next route registered only.
A [Ref] names an action as "Class@method" and is resolved through a [Registry]
under the namespace current when the route was registered.

A request matching no route is redirected to the path registered for http.StatusNotFound,
if any.
*/
package router
