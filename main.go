package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"blackjackd/server"
)

func main() {
	// A .env file is optional; the environment wins either way.
	godotenv.Load()

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	// An explicit port argument beats the environment, e.g. `blackjackd 9000`.
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Printf("invalid port %q, using port %d", os.Args[1], cfg.Port)
		} else {
			cfg.Port = port
		}
	}

	matchmaker := server.NewMatchmaker(cfg)
	srv := server.NewServer(cfg, matchmaker)

	log.Printf("blackjack server listening on %s, tables seat %d players", srv.Addr, server.SeatsPerTable)
	log.Fatal(srv.ListenAndServe())
}
