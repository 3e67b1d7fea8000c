package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/oshaad/backoffice/internal/client/admin"
	"github.com/oshaad/backoffice/internal/client/catalog"
	"github.com/oshaad/backoffice/internal/client/session"
	"github.com/oshaad/backoffice/internal/models"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to manage the
// menu catalog.
func repl(store *session.FileStore, client *catalog.Client) {
	guard := session.Guard{Tokens: store}
	manager := admin.NewManager(client)
	login := &admin.LoginFlow{Auth: client, Tokens: store}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	// The catalog loads up front, like the dashboard does on mount.
	fmt.Println("Loading menu...")
	if err := manager.Refresh(ctx); err != nil {
		fmt.Println(manager.Err())
	} else {
		fmt.Printf("%d menu items loaded.\n", len(manager.Items()))
	}

	for {
		fmt.Print("oshaad> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, status, login, logout, list, add, edit <id>, delete <id>, retry, cancel, exit")
		case "status":
			if guard.IsAuthorized() {
				fmt.Println("Logged in.")
			} else {
				fmt.Println("Not logged in.")
			}
		case "login":
			runLogin(ctx, scanner, guard, login)
		case "logout":
			if err := login.Logout(); err != nil {
				fmt.Println("Logout failed:", err)
			} else {
				fmt.Println("Logged out.")
			}
		case "list":
			if err := manager.Refresh(ctx); err != nil {
				fmt.Println(manager.Err())
				continue
			}
			printItems(manager.Items())
		case "add":
			if !requireLogin(guard) {
				continue
			}
			manager.OpenCreate()
			admin.FillForm(scanner, manager.Form())
			submit(ctx, manager)
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			if !requireLogin(guard) {
				continue
			}
			if err := manager.OpenEdit(args[1]); err != nil {
				fmt.Println(err)
				continue
			}
			if image := manager.EditingImage(); image != "" {
				fmt.Println("Current image:", image)
			}
			admin.FillForm(scanner, manager.Form())
			submit(ctx, manager)
		case "retry":
			// A failed submit keeps the draft; retry sends it again.
			if manager.State() == admin.FormHidden {
				fmt.Println("Nothing to retry.")
				continue
			}
			submit(ctx, manager)
		case "cancel":
			manager.CloseForm()
			fmt.Println("Draft discarded.")
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if !requireLogin(guard) {
				continue
			}
			err := manager.Delete(ctx, args[1], func(item models.MenuItem) bool {
				fmt.Printf("Are you sure you want to delete %q? (y/N): ", item.Name)
				if !scanner.Scan() {
					return false
				}
				answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
				return answer == "y" || answer == "yes"
			})
			switch {
			case errors.Is(err, admin.ErrCancelled):
				fmt.Println("Delete cancelled.")
			case err != nil:
				fmt.Println(manager.Err())
			default:
				fmt.Println("Menu item deleted.")
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func runLogin(ctx context.Context, scanner *bufio.Scanner, guard session.Guard, login *admin.LoginFlow) {
	if guard.IsAuthorized() {
		fmt.Println("Already logged in.")
		return
	}

	fmt.Print("Email: ")
	if !scanner.Scan() {
		return
	}
	email := strings.TrimSpace(scanner.Text())

	fmt.Print("Password: ")
	if !scanner.Scan() {
		return
	}
	password := scanner.Text()

	if err := login.Authenticate(ctx, email, password); err != nil {
		var netErr *catalog.NetworkError
		if errors.As(err, &netErr) {
			fmt.Println("Login failed. Please check your credentials or try again later.")
			return
		}
		fmt.Println(err)
		return
	}
	fmt.Println("Logged in.")
}

// submit sends the staged draft and reports the outcome. On failure the
// draft stays open for retry or cancel.
func submit(ctx context.Context, manager *admin.Manager) {
	if err := manager.Submit(ctx); err != nil {
		fmt.Println(manager.Err())
		fmt.Println("The draft was kept; use 'retry' to submit again or 'cancel' to discard it.")
		return
	}
	fmt.Println("Menu item saved.")
}

func requireLogin(guard session.Guard) bool {
	if guard.IsAuthorized() {
		return true
	}
	fmt.Println("Please login first.")
	return false
}

func printItems(items []models.MenuItem) {
	if len(items) == 0 {
		fmt.Println("No menu items found.")
		return
	}
	for _, item := range items {
		available := "yes"
		if !item.IsAvailable {
			available = "no"
		}
		fmt.Printf("%s  %-24s %-14s %8.2f  available: %s\n",
			item.ID, item.Name, item.Category, item.Price, available)
	}
}

// main parses command-line flags and starts the interactive shell.
func main() {
	var (
		baseURL     string
		sessionPath string
		showVer     bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:5000", "server base URL")
	flag.StringVar(&sessionPath, "session", "", "path to the session file (defaults to the user config dir)")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Oshaad Admin\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	if sessionPath == "" {
		path, err := session.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
		sessionPath = path
	}

	store := session.NewFileStore(sessionPath)
	client := catalog.New(strings.TrimRight(baseURL, "/"), store)

	repl(store, client)
}
