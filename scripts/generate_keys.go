//go:build ignore

// This script generates random API keys for the admin back-office.
// Run with: go run scripts/generate_keys.go [count]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := 1
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Invalid key count %q\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	keys := make([]string, 0, count)
	for range count {
		// 24 bytes = 192 bits
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("=== Bakery Service Admin Key Generator ===")
	fmt.Println()
	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Println("# Back-office API keys (sent as X-API-Key)")
	fmt.Println("ADMIN_AUTH_ENABLED=true")
	fmt.Printf("ADMIN_API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Give each admin client its own key so one can be revoked alone")
}
