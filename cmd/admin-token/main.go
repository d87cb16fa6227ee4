// Command admin-token prints a signed admin bearer token for the /admin
// endpoints, using the JWT settings from the environment.
//
// Flags:
//
//	--subject  identity recorded in the token and in admin request logs
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sebacontegrand/recetasjanet/internal/auth"
	"github.com/sebacontegrand/recetasjanet/internal/config"
)

func main() {
	subject := flag.String("subject", "janet", "token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AdminTokenTTL)

	token, err := jwt.GenerateAdminToken(*subject)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
