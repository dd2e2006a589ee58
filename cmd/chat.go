package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	api "pizzabot/internal/adapters/in/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const chatGreeting = "PizzaBot here. What would you like to order? (type 'exit' to leave, 'new' to start over)"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the ordering assistant in the terminal",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	root, closeRoot, err := OpenCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRoot()

	assistant, closeAgent, err := root.CreateAgent(cmd.Context())
	if err != nil {
		return err
	}
	defer closeAgent()

	return chatLoop(cmd.Context(), assistant, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatLoop reads one message per line until EOF or "exit".
func chatLoop(ctx context.Context, assistant api.Chatter, in io.Reader, out io.Writer) error {
	sessionID := uuid.NewString()
	orderID := ""

	fmt.Fprintln(out, chatGreeting)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(text) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "new":
			sessionID = uuid.NewString()
			orderID = ""
			fmt.Fprintln(out, "Started a new conversation.")
			continue
		}

		reply, err := assistant.Reply(ctx, sessionID, text)
		if err != nil {
			fmt.Fprintf(out, "pizzabot> sorry, something went wrong: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "pizzabot> %s\n", reply.Text)
		if reply.OrderID != "" && reply.OrderID != orderID {
			orderID = reply.OrderID
			fmt.Fprintf(out, "(order %s)\n", orderID)
		}
	}
}
