// Command vapidgen prints a fresh push key pair. Run it once during
// server setup and put the values into the server environment.
package main

import (
	"fmt"
	"log"

	"github.com/ysemenovs/deskhub/internal/vapid"
)

func main() {
	kp, err := vapid.GenerateKeys()
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Add these to your server environment:")
	fmt.Println()
	fmt.Printf("VAPID_PUBLIC_KEY=%s\n", kp.PublicKey)
	fmt.Printf("VAPID_PRIVATE_KEY=%s\n", kp.PrivateKey)
}
