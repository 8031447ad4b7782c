// Package account implements user registration, login and user management
// over a JSON API.
//
// The module is split the same way as the rest of the codebase:
//
//   - Service holds the business rules: input validation, bcrypt hashing,
//     unique email handling and session token issuance.
//   - Storage is the persistence contract. PGStorage implements it on a
//     pgx pool with single-statement writes, so uniqueness and existence
//     checks cannot race.
//   - Routes mounts the HTTP handlers on a chi router. Every endpoint keeps
//     its own response shape, so binding failures are rendered per route.
//
// Example:
//
//	svc := account.NewService(account.NewPGStorage(pool), tokens, hasher,
//		account.WithLogger(log),
//	)
//	account.Routes(r, svc, account.RouteOptions{
//		Login:     []func(http.Handler) http.Handler{loginLimiter},
//		Protected: []func(http.Handler) http.Handler{jwt.Middleware(tokens)},
//	})
package account
