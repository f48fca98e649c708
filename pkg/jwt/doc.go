// Package jwt signs and validates the RS256 bearer tokens the ClubHub API
// authenticates with.
//
// Tokens are compact JWS: base64url(header).base64url(claims).base64url(sig),
// signed with an RSA private key and verified with the matching public key.
// A server that only validates tokens needs just the public key.
//
// # Signing
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/clubhub.pem",
//	    Issuer:         "clubhub-api",
//	    ExpirationMins: 60,
//	})
//	token, err := service.Sign(jwt.Claims{UserID: "user:abc", Email: "abc@club.test"})
//
// # Validation
//
//	claims, err := service.Validate(token)
//	switch {
//	case errors.Is(err, jwt.ErrTokenExpired):
//	case errors.Is(err, jwt.ErrInvalidSignature):
//	}
//
// Validate checks the signature, the exp/nbf window, and the issuer before
// returning claims.
package jwt
