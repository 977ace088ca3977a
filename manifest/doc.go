/*
Package manifest describes a route table in YAML and registers it onto a router.Router.

	base_path: /app
	routes:
	  - path: /
	    action: HomeController@index
	    name: home
	groups:
	  - prefix: /admin
	    namespace: admin
	    middleware: [auth]
	    routes:
	      - path: /users/{id:[0-9]+}
	        action: UserController@show
	      - method: POST
	        path: /users
	        action: UserController@store
	errors:
	  - code: 404
	    path: /404
	    action: ErrorController@notFound

Actions name controllers registered in a router.Registry.
Middleware are named and supplied to Register.
*/
package manifest
