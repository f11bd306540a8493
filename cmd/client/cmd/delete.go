package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteAll bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить запись или все записи",
	Args: func(cmd *cobra.Command, args []string) error {
		if deleteAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			msg string
			err error
		)
		if deleteAll {
			msg, err = app.API().DeleteAll(cmd.Context())
		} else {
			msg, err = app.API().Delete(cmd.Context(), args[0])
		}
		if err != nil {
			return fmt.Errorf("ошибка удаления: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", msg)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "удалить все записи")
}
