package browser

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// Login signs the browser session into Bahar with the given credentials.
// It is a no-op when the page already shows an authenticated state.
func Login(page *rod.Page, username, password string) error {
	if username == "" || password == "" {
		return errors.New("missing credentials")
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for page: %w", err)
	}

	if isLoggedIn(page) {
		log.Printf("[browser] already authenticated")
		return nil
	}

	userField, ok := firstElement(page, loginUsernameSelectors)
	if !ok {
		return errors.New("username field not found")
	}
	if err := userField.Input(username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}

	passField, ok := firstElement(page, loginPasswordSelectors)
	if !ok {
		return errors.New("password field not found")
	}
	if err := passField.Input(password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}

	if submit, ok := firstElement(page, loginSubmitSelectors); ok {
		if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return fmt.Errorf("click login: %w", err)
		}
	} else {
		// No button variant matched; submit from the password field.
		if err := passField.Type(input.Enter); err != nil {
			return fmt.Errorf("submit via enter: %w", err)
		}
	}

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait after login: %w", err)
	}
	time.Sleep(2 * time.Second)

	if !isLoggedIn(page) {
		return errors.New("login verification failed")
	}
	log.Printf("[browser] authenticated")
	return nil
}

func isLoggedIn(page *rod.Page) bool {
	info, err := page.Info()
	if err == nil {
		url := strings.ToLower(info.URL)
		if strings.Contains(url, "dashboard") || strings.Contains(url, "profile") {
			return true
		}
	}

	_, found := firstElement(page, loggedInSelectors)
	return found
}
