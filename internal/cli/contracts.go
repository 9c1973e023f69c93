package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"talentia/internal/app"
	"talentia/internal/domain/contract"
)

func (a *App) contractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Escrow contracts for approved applications",
	}
	cmd.AddCommand(a.contractShowCommand(), a.contractCreateCommand(), a.contractReleaseCommand())
	return cmd
}

func (a *App) contractShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show the contract state for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			state, fetched, err := a.escrow.ContractState(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}
			if state == contract.StateNone {
				fmt.Fprintln(a.out, "No contract yet.")
				return nil
			}
			fmt.Fprintf(a.out, "Contract %s\n", fetched.ID)
			fmt.Fprintf(a.out, "State: %s (status %s)\n", state, fetched.Status)
			fmt.Fprintf(a.out, "Amount: %.2f\n", fetched.AgreedAmount)
			return nil
		},
	}
}

func (a *App) contractCreateCommand() *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "create <application-id>",
		Short: "Fund an escrow contract for an approved application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			created, err := a.escrow.CreateContract(cmd.Context(), app.CreateContractInput{
				ApplicationID: args[0],
				Amount:        amount,
			}, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Funded contract %s for %.2f\n", created.ID, created.AgreedAmount)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "agreed amount")
	return cmd
}

func (a *App) contractReleaseCommand() *cobra.Command {
	var rating int
	var comment string
	cmd := &cobra.Command{
		Use:   "release <application-id>",
		Short: "Release the escrow payment, optionally leaving a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			input := app.ReleaseInput{ApplicationID: args[0], Comment: comment}
			if cmd.Flags().Changed("rating") {
				input.Rating = &rating
			}
			released, err := a.escrow.Release(cmd.Context(), input, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Released contract %s (status %s)\n", released.ID, released.Status)
			return nil
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "review rating, 1-5")
	cmd.Flags().StringVar(&comment, "comment", "", "review comment")
	return cmd
}
