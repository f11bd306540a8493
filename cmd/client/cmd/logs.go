package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"clipshare/internal/app/client"
	"clipshare/internal/domain/audit"

	"github.com/spf13/cobra"
)

var (
	logsType  string
	logsLimit int
	logsJSON  bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Журнал аудита",
	Long:  `Показывает последние события аудита и общую статистику. Нужен ADMIN_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := app.API().AuditLogs(cmd.Context(), logsType, logsLimit)
		if err != nil {
			return fmt.Errorf("ошибка получения журнала: %w", err)
		}

		out := cmd.OutOrStdout()
		if logsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(logs)
		}
		return printLogs(out, logs)
	},
}

func printLogs(w io.Writer, logs client.AuditLogs) error {
	s := logs.Summary
	fmt.Fprintf(w, "Всего: paste=%d delete=%d copy=%d login=%d\n\n",
		s.TotalPasteLogs, s.TotalDeleteLogs, s.TotalCopyLogs, s.TotalLoginLogs)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Время\tТип\tАдрес\tСессия\tДетали\t\n")
	for _, group := range [][]audit.Event{logs.PasteLogs, logs.DeleteLogs, logs.CopyLogs, logs.LoginLogs} {
		for _, e := range group {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Category, e.ClientAddress, e.SessionID, details(e))
		}
	}
	return tw.Flush()
}

func details(e audit.Event) string {
	switch e.Category {
	case audit.CategoryPaste:
		return preview(e.Content)
	case audit.CategoryDelete:
		return fmt.Sprintf("[%s] %s", e.DeleteType, preview(e.DeletedContent))
	case audit.CategoryCopy:
		return preview(e.CopiedContent)
	case audit.CategoryLogin:
		if e.Success != nil && *e.Success {
			return "успешно"
		}
		return "отказ"
	}
	return ""
}

func init() {
	logsCmd.Flags().StringVar(&logsType, "type", "all", "категория: paste, delete, copy, login, all")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 50, "событий на категорию")
	logsCmd.Flags().BoolVar(&logsJSON, "json", false, "вывод в формате JSON")
}
