package ranger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/http/session"
	"github.com/xy-planning-network/waypoint/logger"
)

// HealthPath answers with http.StatusOK while the server is up.
const HealthPath = "/healthz"

// A Ranger manages and exposes all components of a waypoint app to one another.
type Ranger struct {
	basePath  string
	closers   []func() error
	ctx       context.Context
	env       waypoint.Environment
	everyReq  []middleware.Adapter
	l         logger.Logger
	mux       *mux.Router
	names     router.NameStore
	registry  *router.Registry
	sessions  session.SessionStorer
	setup     func(*router.Router)
	srv       *http.Server
	storeKind StoreKind
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// setup registers routes on the *router.Router built for each request.
func New(setup func(*router.Router), opts ...RangerOption) (*Ranger, error) {
	if setup == nil {
		return nil, fmt.Errorf("%w: setup cannot be nil", waypoint.ErrBadConfig)
	}

	r := &Ranger{ctx: context.Background(), setup: setup}
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an optFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			r.close()
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}
	}

	r.mux = mux.NewRouter()
	r.mux.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet, http.MethodHead)
	r.mux.PathPrefix("/").Handler(middleware.Chain(http.HandlerFunc(r.serveRoutes), r.everyReq...))
	r.srv.Handler = r.mux

	return r, nil
}

func (r *Ranger) EmitEnv() waypoint.Environment           { return r.env }
func (r *Ranger) EmitLogger() logger.Logger               { return r.l }
func (r *Ranger) EmitNameStore() router.NameStore         { return r.names }
func (r *Ranger) EmitRegistry() *router.Registry          { return r.registry }
func (r *Ranger) EmitSessionStore() session.SessionStorer { return r.sessions }

// Handler exposes the http.Handler the web server uses.
func (r *Ranger) Handler() http.Handler { return r.mux }

// Router constructs the *router.Router answering req,
// with named routes kept in names.
func (r *Ranger) Router(req *http.Request, names router.NameStore) *router.Router {
	rt := router.New(
		router.WithBasePath(r.basePath),
		router.WithLogger(r.l),
		router.WithNameStore(names),
		router.WithRegistry(r.registry),
		router.WithRequest(req),
	)
	r.setup(rt)

	return rt
}

// serveRoutes dispatches req through a new *router.Router.
// With session stored routes, the NameStore is bound to the session of req.
func (r *Ranger) serveRoutes(w http.ResponseWriter, req *http.Request) {
	names := r.names
	if r.storeKind == SessionStore {
		sess, err := r.sessions.GetSession(req)
		if err != nil {
			r.l.Error("failed getting session", &logger.LogContext{Error: err, Request: req})
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		names = session.NewRouteStore(sess, w, req)
	}

	r.Router(req, names).ServeHTTP(w, req)
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, cancel := context.WithCancel(r.ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			cancel()
		case <-ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		r.l.Error(err.Error(), nil)
		r.close()
		return err
	case <-ctx.Done():
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server and closes connections to the stores backing it.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	r.close()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

func (r *Ranger) close() {
	for _, c := range r.closers {
		if err := c(); err != nil && r.l != nil {
			r.l.Warn("failed closing store", &logger.LogContext{Error: err})
		}
	}
	r.closers = nil
}
