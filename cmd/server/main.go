package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"twentynine-game/internal/database"
	"twentynine-game/internal/game"
	"twentynine-game/internal/server"

	_ "github.com/joho/godotenv/autoload"
)

func rulesFromEnv() game.Rules {
	rules := game.DefaultRules()
	if v, err := strconv.Atoi(os.Getenv("TARGET_SCORE")); err == nil && v > 0 {
		rules.TargetScore = v
	}
	if os.Getenv("HIDDEN_TRUMP") == "true" {
		rules.HiddenTrump = true
	}
	if os.Getenv("SCORE_POLICY") == "margin" {
		rules.Policy = game.MarginPolicy{}
	}
	return rules
}

func main() {
	log.Println("Starting 29 server...")

	db := database.New()
	defer db.Close()

	hub := server.NewHub(&db, rulesFromEnv())
	go hub.Run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})

	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/", fs)

	server.HandleRoutes(&db)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Fatal(http.ListenAndServe(addr, nil))
}
