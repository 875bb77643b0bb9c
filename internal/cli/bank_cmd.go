package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/iaso/internal/cli/formatter"
	"github.com/alexanderramin/iaso/internal/questionbank"
	"github.com/spf13/cobra"
)

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Inspect and validate question banks",
	}

	cmd.AddCommand(
		newBankValidateCmd(),
		newBankShowCmd(),
	)

	return cmd
}

func newBankValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a question bank JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			schema, err := questionbank.ParseSchema(data)
			if err != nil {
				return err
			}

			errs := questionbank.ValidateSchema(schema)
			if len(errs) == 0 {
				fmt.Printf("%s %s (%d questions)\n", formatter.StyleGreen.Render("✓"), args[0], len(schema.Questions))
				return nil
			}

			for _, e := range errs {
				fmt.Printf("%s %v\n", formatter.StyleRed.Render("✗"), e)
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}
}

func newBankShowCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the questions in a bank in asking order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var bank *questionbank.Bank
			var err error
			if file != "" {
				bank, err = questionbank.LoadFile(file)
			} else {
				bank = questionbank.DefaultBank()
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBank(bank.Questions()))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Bank JSON file (defaults to the built-in bank)")

	return cmd
}
