// Package handler defines the shared contracts between the routing, pipeline,
// and response packages: the request Context interface, the generic
// HandlerFunc, the Response render function, and middleware.
//
// Handlers return a Response instead of writing to the ResponseWriter
// directly, which keeps business logic free of transport concerns and lets
// the pipeline own error mapping and cleanup:
//
//	func getUser(ctx *pipeline.Context) handler.Response {
//		user, err := lookup(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(user)
//	}
package handler
