// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap turns them into plain http.HandlerFunc values
// that any router can mount:
//
//	type loginRequest struct {
//		Email string `json:"email"`
//		Senha string `json:"senha"`
//	}
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		token, err := svc.Login(ctx, req.Email, req.Senha)
//		if err != nil {
//			return handler.JSON(failed, handler.WithJSONStatus(http.StatusUnauthorized))
//		}
//		return handler.JSON(map[string]any{"status": true, "token": token})
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, loginRequest](binder.JSON()),
//	))
//
// # Binding
//
// Binders run in order. A binder returning binder.ErrBinderNotApplicable is
// skipped; any other error is passed to the error handler and the handler
// function is never called.
//
// # Responses
//
// JSON encodes the given value as the whole body, with no envelope, so each
// endpoint controls its exact wire shape. WithJSONStatus and WithJSONHeader
// adjust the status line and headers.
//
// # Errors
//
// NewErrorHandler classifies errors (HTTPError, binding failures,
// validator.ValidationErrors), logs them with the request id and renders a
// JSON body. Pass an ErrorRenderer when a route has its own error contract.
package handler
