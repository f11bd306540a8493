package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"clipshare/internal/domain/clipboard"

	"github.com/spf13/cobra"
)

const previewLen = 60

var (
	listPage   int
	listLimit  int
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Показывает записи буфера, новые первыми.

Поддерживается пагинация через флаги --page и --limit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Unlock(cmd.Context(), promptPasscode); err != nil {
			return err
		}

		page, err := app.API().List(cmd.Context(), listPage, listLimit)
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(page)
		case "table":
			return printEntriesTable(out, page)
		default:
			return printEntriesSimple(out, page)
		}
	},
}

func printEntriesSimple(w io.Writer, page clipboard.ListResponse) error {
	if len(page.Entries) == 0 {
		fmt.Fprintln(w, "Записи не найдены")
		return nil
	}

	for _, e := range page.Entries {
		fmt.Fprintf(w, "%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.ID)
		fmt.Fprintf(w, "   %s\n\n", preview(e.Content))
	}
	printPagination(w, page)
	return nil
}

func printEntriesTable(w io.Writer, page clipboard.ListResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tСоздано\tТекст\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t\n")
	for _, e := range page.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), preview(e.Content))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printPagination(w, page)
	return nil
}

func printPagination(w io.Writer, page clipboard.ListResponse) {
	p := page.Pagination
	fmt.Fprintf(w, "Страница %d из %d, всего записей: %d\n", p.CurrentPage, p.TotalPages, p.TotalEntries)
}

func preview(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r == '\n' || r == '\t' {
			runes[i] = ' '
		}
	}
	if len(runes) <= previewLen {
		return string(runes)
	}
	return string(runes[:previewLen]) + "..."
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "номер страницы")
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "записей на странице (до 100)")
	listCmd.Flags().StringVar(&listFormat, "format", "simple", "формат вывода: simple, table, json")
}
