package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"clipshare/internal/app/client"
	"clipshare/internal/domain/audit"
	"clipshare/internal/domain/clipboard"
	"clipshare/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasteContent(t *testing.T) {
	got, err := pasteContent(strings.NewReader("ignored"), []string{"arg"})
	require.NoError(t, err)
	assert.Equal(t, "arg", got)

	got, err = pasteContent(strings.NewReader("from stdin\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = pasteContent(strings.NewReader(""), nil)
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("a\nb"))
	long := strings.Repeat("я", previewLen+5)
	assert.Equal(t, strings.Repeat("я", previewLen)+"...", preview(long))
}

func TestPrintEntries(t *testing.T) {
	page := clipboard.ListResponse{
		Entries:    []clipboard.Entry{{ID: "id-1", Content: "hello", CreatedAt: time.Now()}},
		Pagination: pagination.Window{CurrentPage: 1, TotalPages: 2, TotalEntries: 2, HasNext: true},
	}

	var buf bytes.Buffer
	require.NoError(t, printEntriesTable(&buf, page))
	assert.Contains(t, buf.String(), "id-1")
	assert.Contains(t, buf.String(), "Страница 1 из 2, всего записей: 2")

	buf.Reset()
	require.NoError(t, printEntriesSimple(&buf, clipboard.ListResponse{}))
	assert.Contains(t, buf.String(), "Записи не найдены")
}

func TestPrintLogs(t *testing.T) {
	success := true
	logs := client.AuditLogs{
		DeleteLogs: []audit.Event{{Category: audit.CategoryDelete, DeleteType: audit.DeleteAll, DeletedContent: "bye"}},
		LoginLogs:  []audit.Event{{Category: audit.CategoryLogin, Success: &success}},
		Summary:    client.LogSummary{TotalDeleteLogs: 1, TotalLoginLogs: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, printLogs(&buf, logs))
	assert.Contains(t, buf.String(), "delete=1")
	assert.Contains(t, buf.String(), "[all] bye")
	assert.Contains(t, buf.String(), "успешно")
}
