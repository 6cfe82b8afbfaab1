// Package router is a thin generic layer over gin. Handlers receive a
// typed request and return a typed response; the router binds, runs the
// middleware chain, and renders the JSON envelope.
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerFunc is a business handler. The request is bound from the query
// string on GET and from the JSON body on POST.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler (Before) or after it (After). It
// may derive a new context; returning an error aborts the handler but the
// closers still run.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs at the end of a request, error or not.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx    context.Context
	engine *gin.Engine

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

// New creates a root router. The given context must carry the service
// dependencies (configs, logger, db, token engine, session store); every
// request context derives from it.
func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{ctx: ctx, engine: gin.New()}
}

// Branch clones the router with an independent middleware chain. Routes
// registered on the branch share the underlying engine.
func (r *Router) Branch() *Router {
	branch := &Router{ctx: r.ctx, engine: r.engine}
	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Static(relativePath, root string) {
	r.engine.Static(relativePath, root)
}

// Handle registers a raw http.Handler, bypassing the envelope. Used for
// the metrics endpoint.
func (r *Router) Handle(method, pattern string, handler http.Handler) {
	r.engine.Handle(method, pattern, gin.WrapH(handler))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.engine.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}
