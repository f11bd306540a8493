package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Скопировать запись",
	Long:  `Печатает только текст записи (удобно для pbcopy/xclip) и сообщает серверу о копировании.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Unlock(cmd.Context(), promptPasscode); err != nil {
			return err
		}

		entry, err := app.Copy(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка копирования: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), entry.Content)
		return nil
	},
}
