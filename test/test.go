// Load-test client: connects N players to one room, the first as
// drawer, and spams draw/chat/guess traffic at the server.
//
// Usage: go run test.go <number_of_clients> [room_id]
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const wsURL = "ws://localhost:3000/ws"

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatal("Usage: go run test.go <number_of_clients> [room_id]")
	}

	numClients, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatal("Invalid number of clients:", err)
	}

	roomID := "loadtest"
	if len(args) >= 3 {
		roomID = args[2]
	}
	fmt.Println("Using room:", roomID)

	for i := 0; i < numClients; i++ {
		role := "guesser"
		if i == 0 {
			role = "drawer"
		}
		go connectAndSpam(roomID, fmt.Sprintf("player%d", i), role)
	}

	select {} // block forever (let goroutines run)
}

func connectAndSpam(roomID, playerID, role string) {
	url := fmt.Sprintf("%s/%s", wsURL, roomID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Println("WS connect error:", err)
		return
	}
	defer conn.Close()

	// Drain server replies so the connection stays healthy.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	join := fmt.Sprintf(`{"type":"join","session_id":"%s","name":"%s","role":"%s"}`, playerID, playerID, role)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(join)); err != nil {
		log.Printf("Join error for %s: %v", playerID, err)
		return
	}
	fmt.Printf("%s joined as %s\n", playerID, role)

	for i := 0; i < 100; i++ { // Send 100 messages then stop
		var msg string
		switch rand.Intn(3) {
		case 0:
			msg = fmt.Sprintf(`{"type":"chat","message":"Hello from %s"}`, playerID)
		case 1:
			msg = fmt.Sprintf(`{"type":"draw","x":%d,"y":%d}`, rand.Intn(800), rand.Intn(600))
		default:
			msg = fmt.Sprintf(`{"type":"guess","name":"%s","guess":"banana"}`, playerID)
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			log.Printf("Write error for %s: %v", playerID, err)
			return
		}

		// Random delay between 100-1000ms
		time.Sleep(time.Duration(100+rand.Intn(900)) * time.Millisecond)
	}

	fmt.Printf("%s finished sending messages\n", playerID)
}
