// Package middleware provides HTTP middleware for the ClubHub API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT token validation and user extraction
//   - RequestID: Unique request ID propagation
//   - Logger: Structured request logging
//   - Recovery: Panic recovery with RFC 9457 error responses
//   - CORS: Cross-origin request handling
//   - Compress: Gzip response compression
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	authMiddleware := middleware.Auth(tokenValidator)
//	mux.Handle("GET /v1/notifications", authMiddleware(http.HandlerFunc(h.List)))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
