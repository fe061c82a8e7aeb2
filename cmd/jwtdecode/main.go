package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/honeynil/coffee-token-inspector/internal/config"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/auth"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/observability"
	"github.com/honeynil/coffee-token-inspector/internal/token"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jwtdecode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	withHeader := fs.Bool("header", false, "Also print the decoded header")
	loginURL := fs.Bool("login-url", false, "Print the Auth0 login link and exit")
	logLevel := fs.String("log-level", "error", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	observability.InitLogger(*logLevel)

	if *loginURL {
		cfg := config.Load()
		fmt.Fprintln(stdout, cfg.Auth0.LoginURL(""))
		return 0
	}

	tok, err := readToken(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "jwtdecode: %v\n", err)
		return 1
	}

	payload, err := token.DecodePayload(tok)
	if err != nil {
		fmt.Fprintf(stderr, "jwtdecode: %v\n", err)
		return 1
	}

	var out interface{} = payload
	if *withHeader {
		header, err := token.DecodeHeader(tok)
		if err != nil {
			fmt.Fprintf(stderr, "jwtdecode: %v\n", err)
			return 1
		}
		out = map[string]interface{}{"header": header, "payload": payload}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "jwtdecode: %v\n", err)
		return 1
	}
	return 0
}

// readToken takes the first argument, or the first non-empty line of stdin.
// A full "Bearer <token>" header value is accepted in both places.
func readToken(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return stripBearer(strings.TrimSpace(args[0]))
	}
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return stripBearer(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return "", fmt.Errorf("no token given")
}

func stripBearer(value string) (string, error) {
	if len(value) > 7 && strings.EqualFold(value[:7], "Bearer ") {
		return auth.TokenFromHeader(value)
	}
	return value, nil
}
