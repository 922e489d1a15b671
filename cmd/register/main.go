// The register binary walks a new member through self-registration on the
// terminal and appends their profile to the remote user registry.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"flightdealclub/config"
	"flightdealclub/internal/adapters/sheets"
	"flightdealclub/internal/domain"
	"flightdealclub/internal/services"
)

const welcome = `Welcome to the Flight Deal Club.
We find the best flight deals and email you.
What is your first name?`

func main() {
	if err := run(); err != nil {
		log.Printf("registration failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx := context.Background()

	httpClient := &http.Client{Timeout: 60 * time.Second}
	store := sheets.NewClient(httpClient, cfg.SheetsBaseURL, cfg.SheetsToken)
	registry, err := services.NewUserRegistry(ctx, store)
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	first := prompt(in, welcome)
	last := prompt(in, "What is your last name?")

	email := prompt(in, "What is your email?")
	for confirm := prompt(in, "Enter your email again to confirm"); confirm != email; {
		fmt.Println("Those email addresses don't match. Let's try again.")
		email = prompt(in, "What is your email?")
		confirm = prompt(in, "Enter your email again to confirm")
	}

	fmt.Println("You're in the club! Just a few more questions...")
	home := prompt(in, "What airport do you fly out of? Enter the IATA code")
	minNights := promptInt(in, "What's the minimum number of nights you want to stay at your destination?")
	maxNights := promptInt(in, "What's the maximum number of nights you want to stay at your destination?")

	user, err := registry.Add(ctx, first, last, email, home, minNights, maxNights)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("that profile isn't valid: %w", vErr)
		}
		return err
	}
	fmt.Printf("All set, %s! Deals from %s will land in %s.\n", user.FirstName, user.HomeAirport, user.Email)
	return nil
}

func prompt(in *bufio.Reader, question string) string {
	fmt.Println(question)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(in *bufio.Reader, question string) int {
	for {
		raw := prompt(in, question)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a whole number.")
			continue
		}
		return n
	}
}
