// Command admin-token mints a signed admin JWT for local development against
// the ClubHub API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/clubhub/api/pkg/jwt"
)

type options struct {
	keyPath string
	userID  string
	email   string
	issuer  string
	expMins int
	asJSON  bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.keyPath, "key", "./keys/private.pem", "Path to JWT private key")
	flag.StringVar(&opts.userID, "user", "admin-dev-user", "User ID for the token")
	flag.StringVar(&opts.email, "email", "admin@clubhub.dev", "Email for the token")
	flag.StringVar(&opts.issuer, "issuer", "clubhub.forgo.software", "JWT issuer; must match the server's JWT_ISSUER")
	flag.IntVar(&opts.expMins, "exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	flag.BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	flag.Parse()
	return opts
}

func run(opts options) error {
	signer, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: opts.keyPath,
		Issuer:         opts.issuer,
		ExpirationMins: opts.expMins,
	})
	if err != nil {
		return fmt.Errorf("creating JWT service (generate keys with 'make keys-generate'): %w", err)
	}

	token, err := signer.Sign(jwt.Claims{
		UserID:   opts.userID,
		Email:    opts.email,
		Username: "Admin",
		Role:     "admin",
	})
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   opts.expMins * 60,
			"user_id":      opts.userID,
			"email":        opts.email,
			"role":         "admin",
		})
	}

	expires := time.Now().Add(time.Duration(opts.expMins) * time.Minute)
	fmt.Println("Admin Token Generated")
	fmt.Println("=====================")
	fmt.Printf("User ID:  %s\n", opts.userID)
	fmt.Printf("Email:    %s\n", opts.email)
	fmt.Printf("Role:     admin\n")
	fmt.Printf("Expires:  %s\n", expires.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/notifications\n", token[:50]+"...")
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
