package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bigex/backend/pkg/ws"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/gorilla/websocket"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)
type WebsocketHandlerFunc[Request any] func(ctx context.Context, req *Request) error
type MiddlewareFunc func(ctx context.Context) (context.Context, error)
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx context.Context
	mux *http.ServeMux

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(ctx context.Context) *Router {
	return &Router{
		ctx: ctx,
		mux: http.NewServeMux(),
	}
}

// Branch returns a new router sharing the same mux but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		mux:     r.mux,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
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

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func Websocket[Request any](r *Router, pattern string, handler WebsocketHandlerFunc[Request]) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		var err error
		for _, middleware := range r.befores {
			if ctx, err = middleware(ctx); err != nil {
				writeResponse(ctx, newErrorResponse(err))
				return
			}
		}

		var request Request
		if err := bindQuery(req.URL.Query(), &request); err != nil {
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upgrade connection: %v", err)
			return
		}
		defer conn.Close()

		client := ws.NewClient(conn)
		ctx = xcontext.WithWSClient(ctx, client)

		if err := handler(ctx, &request); err != nil {
			ctx = xcontext.WithError(ctx, err)
		}

		for _, closer := range r.closers {
			closer(ctx)
		}
	})
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		defer func() {
			for _, closer := range r.closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			ctx = xcontext.WithError(ctx, errMethodNotAllowed)
			writeResponse(ctx, newErrorResponse(errMethodNotAllowed))
			return
		}

		var err error
		for _, middleware := range r.befores {
			if ctx, err = middleware(ctx); err != nil {
				ctx = xcontext.WithError(ctx, err)
				writeResponse(ctx, newErrorResponse(err))
				return
			}
		}

		var request Request
		switch method {
		case http.MethodGet:
			err = bindQuery(req.URL.Query(), &request)
		case http.MethodPost:
			if strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
				// The handler reads the multipart body itself through
				// xcontext.HTTPRequest.
				err = nil
			} else if req.ContentLength > 0 {
				err = json.NewDecoder(req.Body).Decode(&request)
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		resp, err := handler(ctx, &request)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		for _, middleware := range r.afters {
			if ctx, err = middleware(ctx); err != nil {
				ctx = xcontext.WithError(ctx, err)
				writeResponse(ctx, newErrorResponse(err))
				return
			}
		}

		writeResponse(ctx, newResponse(resp))
	}
}
