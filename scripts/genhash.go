package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Small helper for seeding local accounts: prints a bcrypt hash for each
// password passed on the command line.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run scripts/genhash.go <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
