// Command devtoken mints (or revokes) a development access token.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"travelshare/internal/cache"
	"travelshare/internal/config"
	"travelshare/internal/devtoken"
)

func main() {
	userID := flag.Uint("user", 1, "User ID to put in the subject claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	revoke := flag.String("revoke", "", "Blacklist the given token id (jti) instead of minting")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("devtoken refuses to run against a production configuration")
	}

	if *revoke != "" {
		cache.InitRedis(cfg.RedisURL)
		if err := devtoken.Revoke(context.Background(), cache.GetClient(), *revoke, *ttl); err != nil {
			log.Fatalf("Failed to revoke token: %v", err)
		}
		log.Printf("token %s revoked for %s", *revoke, *ttl)
		return
	}

	tok, err := devtoken.Mint(cfg, uint(*userID), *ttl)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}
	log.Printf("jti=%s expires=%s", tok.JTI, tok.ExpiresAt.Format(time.RFC3339))
	fmt.Println(tok.Value)
}
