package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"talentia/internal/app"
)

func (a *App) gigsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gigs",
		Short: "Browse and manage marketplace opportunities",
	}
	cmd.AddCommand(
		a.gigsListCommand(),
		a.gigsMineCommand(),
		a.gigsPostCommand(),
		a.gigsApplyCommand(),
		a.gigsApplicationsCommand(),
		a.gigsApproveCommand(),
	)
	return cmd
}

func (a *App) gigsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			gigs, err := a.marketplace.Browse(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(gigs))
			for _, g := range gigs {
				rows = append(rows, []string{
					g.ID, truncate(g.Title, 40), orDash(g.Company), orDash(string(g.Type)),
					orDash(g.Budget), orDash(g.Location), strconv.Itoa(g.Applicants),
				})
			}
			renderTable(a.out, []string{"ID", "TITLE", "COMPANY", "TYPE", "BUDGET", "LOCATION", "APPLICANTS"}, rows)
			return nil
		},
	}
}

func (a *App) gigsMineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List opportunities you posted",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			gigs, err := a.marketplace.MyGigs(cmd.Context(), token)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(gigs))
			for _, g := range gigs {
				rows = append(rows, []string{g.ID, truncate(g.Title, 40), orDash(g.Budget), strconv.Itoa(g.Applicants)})
			}
			renderTable(a.out, []string{"ID", "TITLE", "BUDGET", "APPLICANTS"}, rows)
			return nil
		},
	}
}

func (a *App) gigsPostCommand() *cobra.Command {
	var input app.PostGigInput
	var budgetMin, budgetMax float64
	var deadline string
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new opportunity",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("budget-min") {
				input.BudgetMin = &budgetMin
			}
			if cmd.Flags().Changed("budget-max") {
				input.BudgetMax = &budgetMax
			}
			if deadline != "" {
				parsed, err := time.Parse(time.RFC3339, deadline)
				if err != nil {
					return fmt.Errorf("parse deadline: %w", err)
				}
				input.Deadline = &parsed
			}
			created, err := a.marketplace.Post(cmd.Context(), input, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Posted %q (%s)\n", created.Title, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Title, "title", "", "opportunity title")
	cmd.Flags().StringVar(&input.Description, "description", "", "description")
	cmd.Flags().StringVar(&input.Role, "role", "", "role being hired for")
	cmd.Flags().Float64Var(&budgetMin, "budget-min", 0, "minimum budget")
	cmd.Flags().Float64Var(&budgetMax, "budget-max", 0, "maximum budget")
	cmd.Flags().StringVar(&input.Location, "location", "", "location")
	cmd.Flags().StringVar(&input.Type, "type", "", "CONTRACT, GIG, PROJECT or ONGOING")
	cmd.Flags().StringVar(&input.Category, "category", "", "category")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (RFC 3339)")
	return cmd
}

func (a *App) gigsApplyCommand() *cobra.Command {
	var proposal string
	cmd := &cobra.Command{
		Use:   "apply <gig-id>",
		Short: "Apply to an opportunity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			application, err := a.marketplace.Apply(cmd.Context(), app.ApplyInput{GigID: args[0], Proposal: proposal}, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Applied. Application %s is %s\n", application.ID, application.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&proposal, "proposal", "", "proposal text")
	return cmd
}

func (a *App) gigsApplicationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "applications <gig-id>",
		Short: "List applications for one of your opportunities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			applications, err := a.marketplace.Applications(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(applications))
			for _, ap := range applications {
				rows = append(rows, []string{ap.ID, ap.StudentName, string(ap.Status), formatTime(ap.AppliedAt), truncate(ap.Proposal, 50)})
			}
			renderTable(a.out, []string{"ID", "STUDENT", "STATUS", "APPLIED", "PROPOSAL"}, rows)
			return nil
		},
	}
}

func (a *App) gigsApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <application-id>",
		Short: "Approve an application and open its conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			approved, err := a.escrow.Approve(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Approved %s for %s\n", approved.ID, approved.StudentName)
			fmt.Fprintf(a.out, "Chat with `talentia messages show %s`\n", approved.ID)
			return nil
		},
	}
}
