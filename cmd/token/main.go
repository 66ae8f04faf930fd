package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/joefazee/wagerlog/internal/nexus"
	"github.com/joefazee/wagerlog/internal/security"
)

type config struct {
	Token security.Config
}

// token mints an access token for local development
func main() {
	userFlag := flag.String("user", "", "user ID to issue the token for (random when empty)")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime, defaults to ACCESS_TOKEN_TTL")
	flag.Parse()

	var cfg config
	if err := nexus.NewLoader(nexus.WithOnlyEnvironment()).Load(&cfg); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid user ID %q: %v", *userFlag, err)
		}
		userID = parsed
	}

	ttl := cfg.Token.AccessTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	maker, err := security.NewPasetoMaker(cfg.Token.SymmetricKey)
	if err != nil {
		log.Fatal("cannot create token maker:", err)
	}

	token, payload, err := maker.CreateToken(userID, ttl, 1, security.TokenScopeAccess)
	if err != nil {
		log.Fatal("cannot create token:", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, expires %s\n", payload.UserID, payload.ExpiredAt)
	fmt.Println(token)
}
