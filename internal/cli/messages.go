package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"talentia/internal/app"
)

func (a *App) messagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Conversations scoped to your applications",
	}
	cmd.AddCommand(a.messagesListCommand(), a.messagesShowCommand(), a.messagesSendCommand())
	return cmd
}

func (a *App) messagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			conversations, err := a.escrow.Conversations(cmd.Context(), token)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(conversations))
			for _, conv := range conversations {
				last := "-"
				if m := conv.Last(); m != nil {
					last = truncate(m.Content, 50)
				}
				rows = append(rows, []string{conv.ApplicationID, orDash(conv.GigTitle), strconv.Itoa(len(conv.Messages)), last})
			}
			renderTable(a.out, []string{"APPLICATION", "GIG", "MESSAGES", "LAST"}, rows)
			return nil
		},
	}
}

func (a *App) messagesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show a conversation thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			conv, err := a.escrow.Conversation(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}
			if len(conv.Messages) == 0 {
				fmt.Fprintln(a.out, "No messages yet. Say hello to start the conversation.")
				return nil
			}
			me := ""
			if current := a.sessions.Load(); current != nil {
				me = current.User.ID
			}
			for _, m := range conv.Messages {
				sender := m.SenderID
				if sender == me {
					sender = "you"
				}
				fmt.Fprintf(a.out, "[%s] %s: %s\n", formatTime(m.CreatedAt), sender, m.Content)
			}
			return nil
		},
	}
}

func (a *App) messagesSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send <application-id> <message...>",
		Short: "Send a message in a conversation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			input := app.SendMessageInput{
				ApplicationID: args[0],
				Content:       strings.Join(args[1:], " "),
			}
			sent, err := a.escrow.Send(cmd.Context(), input, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Sent at %s\n", formatTime(sent.CreatedAt))
			return nil
		},
	}
}
