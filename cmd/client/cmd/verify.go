package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Проверить общий пароль",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Unlock(cmd.Context(), promptPasscode); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Пароль верный")
		return nil
	},
}
