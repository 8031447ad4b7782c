// Package jwt issues and verifies HS256 tokens on top of
// github.com/golang-jwt/jwt/v5.
//
// A Service holds the signing secret, default lifetime and issuer. Callers
// embed RegisteredClaims in their own claims type:
//
//	type SessionClaims struct {
//		ID    int64  `json:"id"`
//		Email string `json:"email"`
//		jwt.RegisteredClaims
//	}
//
//	claims := SessionClaims{ID: u.ID, Email: u.Email, RegisteredClaims: svc.Registered("")}
//	token, err := svc.Generate(claims)
//
// Parse accepts only HS256, checks exp/nbf/iat and, when an issuer is
// configured, iss. Middleware guards routes with a bearer token and stores
// the token and its claims in the request context.
package jwt
