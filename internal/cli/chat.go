package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/injazapp/injaz/internal/assistant"
	"github.com/injazapp/injaz/internal/keyring"
	"github.com/injazapp/injaz/internal/models"
)

type ChatCmd struct {
	Message []string `arg:"" help:"Message to send. Omit for an interactive session." optional:""`
}

func (c *ChatCmd) Run(ctx *Context) error {
	client := assistant.New()

	if len(c.Message) > 0 {
		reply := client.Send(context.Background(), nil, strings.Join(c.Message, " "))
		fmt.Println(reply)
		return nil
	}

	// Interactive session. History lives only for the session, like the
	// original chat surface.
	fmt.Println("Chat session started. Type 'exit' to quit.")
	history := []models.ChatMessage{}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply := client.Send(context.Background(), history, line)
		fmt.Println(reply)
		history = append(history,
			models.ChatMessage{Role: models.ChatRoleUser, Text: line},
			models.ChatMessage{Role: models.ChatRoleAssistant, Text: reply},
		)
	}
	return scanner.Err()
}

type ChatLoginCmd struct {
	Key string `help:"API key. Prompted for when omitted."`
}

func (c *ChatLoginCmd) Run(ctx *Context) error {
	key := c.Key
	if key == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Assistant API key").
				EchoMode(huh.EchoModePassword).
				Value(&key),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("no key provided")
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in the system keyring")
	return nil
}

type ChatLogoutCmd struct{}

func (c *ChatLogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("✓ API key removed from the system keyring")
	return nil
}
