// Package main runs an interactive terminal client for the demo bank.
//
// Configuration comes from the environment (optionally via a .env file):
//
//	EBANK_API_URL    base URL of the bank API (default http://localhost:8080)
//	EBANK_STATE_FILE credential storage path (default ~/.config/ebank/credential.json)
//
// Run the demo server first, then:
//
//	go run ./cmd/ebank
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ebank-go/ebank"
	"github.com/ebank-go/ebank/api"
	"github.com/ebank-go/ebank/kv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("could not load .env file", "err", err)
	}

	baseURL := os.Getenv("EBANK_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	statePath := os.Getenv("EBANK_STATE_FILE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("resolve home directory", "err", err)
		}
		statePath = filepath.Join(home, ".config", "ebank", "credential.json")
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0o700); err != nil {
		log.Fatal("create state directory", "err", err)
	}

	client := api.New(baseURL)
	engine, err := ebank.New().
		WithStorage(kv.NewFile(statePath)).
		WithBankAPI(client).
		WithRedirector(ebank.RedirectorFunc(func() {
			fmt.Println("You have been signed out.")
		})).
		Build()
	if err != nil {
		log.Fatal("build client", "err", err)
	}
	defer engine.Close()

	ctx := context.Background()

	for {
		if !engine.IsLoggedIn(ctx) {
			if quit := authScreen(ctx, engine); quit {
				return
			}
			continue
		}
		if quit := bankingScreen(ctx, engine); quit {
			return
		}
	}
}

// authScreen loops over the login/register menu until a session exists or
// the user quits. Returns true on quit.
func authScreen(ctx context.Context, engine *ebank.Engine) bool {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Welcome to the demo bank").
			Options(
				huh.NewOption("Login", "login"),
				huh.NewOption("Register", "register"),
				huh.NewOption("Quit", "quit"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return true
	}

	switch choice {
	case "login":
		runLogin(ctx, engine)
	case "register":
		runRegister(ctx, engine)
	case "quit":
		return true
	}
	return false
}

func runLogin(ctx context.Context, engine *ebank.Engine) {
	var login, password string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&login),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
	))
	if err := form.Run(); err != nil {
		return
	}

	cred, err := engine.Login(ctx, login, password)
	if err != nil {
		log.Error("login failed", "err", err)
		return
	}
	fmt.Printf("Welcome back, %s %s!\n", cred.Owner.Firstname, cred.Owner.Lastname)
}

func runRegister(ctx context.Context, engine *ebank.Engine) {
	var reg ebank.RegistrationForm
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("First name").Value(&reg.Firstname),
		huh.NewInput().Title("Last name").Value(&reg.Lastname),
		huh.NewInput().Title("Username").Value(&reg.Login),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&reg.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&reg.PasswordConfirmation),
	))
	if err := form.Run(); err != nil {
		return
	}

	cred, err := engine.Register(ctx, reg)
	if err != nil {
		if errors.Is(err, ebank.ErrAutoLoginFailed) {
			log.Error("account created, but automatic login failed; please log in manually")
			return
		}
		log.Error("registration failed", "err", err)
		return
	}
	fmt.Printf("Account created. Your BBAN is %s.\n", cred.Owner.BBAN)
}

// bankingScreen drives one workflow session. Returns true on quit.
func bankingScreen(ctx context.Context, engine *ebank.Engine) bool {
	workflow, err := engine.NewWorkflow(ctx)
	if err != nil {
		log.Error("open banking session", "err", err)
		return false
	}

	for {
		renderState(ctx, engine, workflow)

		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Send money", "send"),
					huh.NewOption("Next page", "next"),
					huh.NewOption("Previous page", "prev"),
					huh.NewOption("Refresh", "refresh"),
					huh.NewOption("Logout", "logout"),
					huh.NewOption("Quit", "quit"),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			return true
		}

		switch choice {
		case "send":
			runTransfer(ctx, workflow)
		case "next":
			workflow.NextPage(ctx)
		case "prev":
			workflow.PreviousPage(ctx)
		case "refresh":
			workflow.LoadBalance(ctx)
			workflow.LoadTransactions(ctx)
		case "logout":
			if err := workflow.Logout(ctx); err != nil {
				log.Error("logout", "err", err)
			}
			return false
		case "quit":
			return true
		}
	}
}

func runTransfer(ctx context.Context, workflow *ebank.Workflow) {
	var target, rawAmount string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Recipient BBAN").Value(&target),
		huh.NewInput().
			Title("Amount (CHF)").
			Validate(func(s string) error {
				_, err := decimal.NewFromString(s)
				if err != nil {
					return errors.New("enter a number, e.g. 10.50")
				}
				return nil
			}).
			Value(&rawAmount),
	))
	if err := form.Run(); err != nil {
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		log.Error("invalid amount", "err", err)
		return
	}

	if err := workflow.SendMoney(ctx, target, amount); err != nil {
		log.Error(workflow.FormError())
		return
	}
	fmt.Println(workflow.FormSuccess())
}

func renderState(ctx context.Context, engine *ebank.Engine, workflow *ebank.Workflow) {
	if user, ok := engine.CurrentUser(ctx); ok {
		fmt.Printf("\n%s %s  |  BBAN %s  |  Balance %s CHF\n",
			user.Firstname, user.Lastname, user.BBAN, workflow.Balance().StringFixed(2))
	}

	records := workflow.Transactions()
	if len(records) == 0 {
		fmt.Println("No transactions yet.")
		return
	}

	fmt.Printf("%-20s %-24s %-24s %12s %12s\n", "Date", "From", "To", "Amount", "Balance")
	for _, rec := range records {
		fmt.Printf("%-20s %-24s %-24s %12s %12s\n",
			rec.Date.Format("2006-01-02 15:04:05"),
			rec.Source,
			rec.Target,
			rec.Amount.StringFixed(2),
			rec.NewBalance.StringFixed(2),
		)
	}
	fmt.Printf("Page %d of %d transactions", workflow.Page(), workflow.TotalCount())
	if workflow.HasMorePages() {
		fmt.Print("  (more available)")
	}
	fmt.Println()
}
