// Package binder decodes HTTP request data into typed request structs.
//
// Two binders are provided:
//
//   - JSON decodes an application/json body (1 MB limit, strict mode by
//     default) and runs every decoded string through a sanitizer in the same
//     pass, so handlers only ever see cleaned input.
//   - Path copies router path parameters into fields tagged with `path:"name"`.
//
// Binders have the signature func(*http.Request, any) error and are applied in
// order by handler.Wrap:
//
//	type UpdateRequest struct {
//		ID   string `path:"id"`
//		Nome string `json:"nome"`
//	}
//
//	r.Put("/usuarios/{id}", handler.Wrap(update,
//		handler.WithBinders[UpdateRequest](
//			binder.Path(chi.URLParam),
//			binder.JSON(),
//		),
//	))
//
// A binder that does not apply to a request (JSON on a GET) returns
// ErrBinderNotApplicable and is skipped.
package binder
