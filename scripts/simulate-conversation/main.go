package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

type chatResp struct {
	Response string `json:"response"`
	UserID   string `json:"user_id"`
	LeadID   string `json:"leadId"`
}

type sessionsResp struct {
	ActiveSessions []string `json:"active_sessions"`
	Count          int      `json:"count"`
}

var client = &http.Client{Timeout: 2 * time.Minute}

func main() {
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	url := flag.String("url", "http://localhost:"+port+"/api/chat", "chat endpoint")
	user := flag.String("user", "John Smith", "applicant full name")
	multi := flag.Bool("multi", false, "run two applicants concurrently")
	flag.Parse()

	if !*multi {
		simulate(*url, *user, 1.0)
		return
	}

	users := []string{"John Smith", "Alice Johnson"}
	var wg sync.WaitGroup
	for i, name := range users {
		wg.Add(1)
		go func(name string, delay float64) {
			defer wg.Done()
			simulate(*url, name, delay)
		}(name, 0.5+float64(i)*0.3)
		time.Sleep(500 * time.Millisecond)
	}
	wg.Wait()

	fmt.Println("\n=== All Conversation Simulations Complete ===")
	printSessions(*url)
}

func simulate(url, name string, delayFactor float64) {
	userID := uuid.NewString()
	messages := []string{
		fmt.Sprintf("Hello, I'm interested in your product. My name is %s", name),
		fmt.Sprintf("You can reach me at %s@example.com", strings.ReplaceAll(strings.ToLower(name), " ", ".")),
		fmt.Sprintf("My phone number is 555-%d-%d", 100+rand.Intn(900), 1000+rand.Intn(9000)),
		"I heard about you from a friend",
	}

	fmt.Printf("\n=== Starting Conversation Simulation for %s (ID: %s) ===\n\n", name, userID)

	for i, msg := range messages {
		fmt.Printf("USER %s: %s\n", name, msg)
		resp, err := send(url, chatReq{Message: msg, UserID: userID})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("BOT -> %s: %s\n", name, resp.Response)
		if resp.LeadID != "" {
			fmt.Printf("\n*** Lead created for %s with ID: %s ***\n\n", name, resp.LeadID)
		}
		if i < len(messages)-1 {
			fmt.Println("\n---")
			time.Sleep(time.Duration(delayFactor * (1 + rand.Float64()) * float64(time.Second)))
		}
	}

	fmt.Printf("\n=== Conversation Simulation Complete for %s ===\n", name)
}

func send(url string, req chatReq) (chatResp, error) {
	var out chatResp

	body, err := json.Marshal(req)
	if err != nil {
		return out, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func printSessions(chatURL string) {
	resp, err := client.Get(strings.TrimRight(chatURL, "/") + "/sessions")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var sessions sessionsResp
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Active Sessions: %d\n", sessions.Count)
	for _, id := range sessions.ActiveSessions {
		fmt.Printf("  - %s\n", id)
	}
}
