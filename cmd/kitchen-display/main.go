package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comanda-pos/internal/service"
	"comanda-pos/internal/ws"

	"github.com/gorilla/websocket"
)

const maxBackoff = 30 * time.Second

func main() {
	url := flag.String("url", "ws://localhost:3000/ws", "server websocket url")
	flag.Parse()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	alerter := service.NewKitchenAlerter()
	backoff := time.Second
	for {
		conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
		if err != nil {
			log.Printf("connect %s failed: %v (retry in %s)", *url, err, backoff)
			select {
			case <-quit:
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		backoff = time.Second
		log.Printf("connected to %s", *url)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				_, msg, err := conn.ReadMessage()
				if err != nil {
					log.Printf("connection lost: %v", err)
					return
				}
				handleMessage(alerter, msg, os.Stdout)
			}
		}()

		select {
		case <-quit:
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
			return
		case <-done:
			conn.Close()
		}
	}
}

// handleMessage prints order events and rings the terminal bell when the
// preparing queue grows. It reports whether it rang.
func handleMessage(alerter *service.KitchenAlerter, msg []byte, out io.Writer) bool {
	var event ws.Event
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Printf("ignoring malformed event: %v", err)
		return false
	}

	switch event.Type {
	case ws.EventOrderPlaced:
		if event.Order != nil {
			fmt.Fprintf(out, "NEW  %s (%d items)\n", event.Message, event.Order.TotalItems())
			for _, item := range event.Order.Items {
				line := fmt.Sprintf("     %dx %s", item.Quantity, item.Product.Name)
				if item.Observation != "" {
					line += " / " + item.Observation
				}
				fmt.Fprintln(out, line)
			}
		}
	case ws.EventOrderReady:
		if event.Order != nil {
			fmt.Fprintf(out, "DONE order %s\n", event.Order.ID)
		}
	}

	if event.PreparingCount == nil {
		return false
	}
	if alerter.Observe(*event.PreparingCount) {
		fmt.Fprintf(out, "\a>>> %d order(s) in preparation\n", *event.PreparingCount)
		return true
	}
	return false
}
