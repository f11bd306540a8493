package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:   "paste [text]",
	Short: "Вставить текст в буфер",
	Long:  `Отправляет текст в общий буфер. Без аргументов текст читается из stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := pasteContent(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		id, err := app.API().Paste(cmd.Context(), content)
		if err != nil {
			return fmt.Errorf("ошибка сохранения: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Сохранено, ID: %s\n", id)
		return nil
	},
}

func pasteContent(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения stdin: %w", err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return "", fmt.Errorf("пустой ввод, нечего сохранять")
	}
	return content, nil
}
