package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"rezervace/internal/client"
	"rezervace/internal/config"
	"rezervace/internal/slots"
)

func main() {
	var (
		server = flag.String("server", "http://localhost:3000", "intake service base URL")
		dir    = flag.String("data", ".", "directory holding the local booking store")
		slotID = flag.String("slot", "", "slot to book, e.g. 18-30 (empty lists the catalog)")
		name   = flag.String("name", "", "customer name")
		email  = flag.String("email", "", "customer email")
		people = flag.Int("people", 1, "party size")
	)
	flag.Parse()

	godotenv.Load()
	cfg := config.Load()

	catalog := slots.Generate(cfg.SlotStart, cfg.SlotEnd, cfg.SlotInterval)
	store := client.OpenStore(*dir)

	if *slotID == "" {
		for _, s := range catalog {
			free := slots.Availability(s.ID, cfg.MaxPeople, store.Bookings())
			status := fmt.Sprintf("%d volných míst", free)
			if free == 0 {
				status = "obsazeno"
			}
			fmt.Printf("%s  [%s]  %s\n", s.Time, s.ID, status)
		}
		return
	}

	var selected *slots.Slot
	for i := range catalog {
		if catalog[i].ID == *slotID {
			selected = &catalog[i]
			break
		}
	}
	if selected == nil {
		log.Fatalf("Unknown slot %q", *slotID)
	}

	c := client.New(*server, store, cfg.MaxPeople)
	c.OnState = func(_ client.State, message string) {
		if message != "" {
			fmt.Println(message)
		}
	}

	if err := c.Submit(context.Background(), *selected, *name, *email, *people); err != nil {
		log.Fatalf("Reservation failed: %v", err)
	}

	time.Sleep(client.DisplayDelay)
	c.Dismiss()
}
