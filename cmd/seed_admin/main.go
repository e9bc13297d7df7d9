// seed_admin crea el usuario administrador inicial llamando al endpoint de
// setup del API en ejecución.
//
// Uso: go run ./cmd/seed_admin [url-base]
// Por defecto apunta a http://localhost:3001. Credenciales configurables con
// ADMIN_EMAIL, ADMIN_PASSWORD y ADMIN_NAME.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := "http://localhost:3001"
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	payload := map[string]string{
		"email":    envOr("ADMIN_EMAIL", "admin@leadgen.com"),
		"password": envOr("ADMIN_PASSWORD", "admin123"),
		"name":     envOr("ADMIN_NAME", "Admin User"),
	}
	body, _ := json.Marshal(payload)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(baseURL+"/api/setup/admin", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Llamar al API: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Setup falló (%d): %s\n", resp.StatusCode, out)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado (%s): %s\n", payload["email"], out)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
