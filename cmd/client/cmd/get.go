package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Unlock(cmd.Context(), promptPasscode); err != nil {
			return err
		}

		entry, err := app.API().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ID:      %s\nСоздано: %s\n\n%s\n",
			entry.ID, entry.CreatedAt.Local().Format("2006-01-02 15:04:05"), entry.Content)
		return nil
	},
}
