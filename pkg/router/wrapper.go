package router

import (
	"net/http"

	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	// The chains are captured at registration time, so registering routes
	// before branching keeps them out of the branch.
	befores := r.befores
	afters := r.afters
	closers := append([]CloserFunc{handleResponse()}, r.closers...)

	return func(gctx *gin.Context) {
		ctx := xcontext.WithRequestState(r.ctx)
		ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)
		ctx = xcontext.WithHTTPWriter(ctx, gctx.Writer)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		for _, m := range befores {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		case http.MethodPost:
			err = gctx.ShouldBindJSON(&req)
		}
		if err != nil {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		xcontext.SetResponse(ctx, resp)

		for _, m := range afters {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}
	}
}
