package telegram

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/set-night/chatbotui/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, SplitMessage("short", 10))

	text := strings.Repeat("a", 6) + "\n" + strings.Repeat("b", 6)
	assert.Equal(t, []string{"aaaaaa\n", "bbbbbb"}, SplitMessage(text, 10))

	long := strings.Repeat("я", 25)
	parts := SplitMessage(long, 10)
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 10)
	}
	assert.Equal(t, long, strings.Join(parts, ""))
}

func TestFixMarkdown(t *testing.T) {
	assert.Equal(t, "```go\nx\n```", FixMarkdown("```go\nx"))
	assert.Equal(t, "use `code`", FixMarkdown("use `code"))
	assert.Equal(t, "ok `a` b", FixMarkdown("ok `a` b"))
	assert.Equal(t, "a \\` b", FixMarkdown("a \\` b"))
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, "my\\_bot \\*x\\* \\[y]", EscapeMarkdown("my_bot *x* [y]"))
}

func TestPaginationRow(t *testing.T) {
	row := PaginationRow(0, 1, "wsp")
	require.Len(t, row, 1)
	assert.Equal(t, "noop", row[0].CallbackData)

	row = PaginationRow(1, 3, "wsp")
	require.Len(t, row, 3)
	assert.Equal(t, "wsp_0", row[0].CallbackData)
	assert.Equal(t, "2/3", row[1].Text)
	assert.Equal(t, "wsp_2", row[2].CallbackData)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
}

func TestPhotoFromDataURL(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	photo, err := PhotoFromDataURL(storage.EncodeDataURL(png), "avatar")
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", photo.Filename)

	data, err := io.ReadAll(photo.Data)
	require.NoError(t, err)
	assert.Equal(t, png, data)

	_, err = PhotoFromDataURL(storage.EncodeDataURL([]byte("plain text")), "avatar")
	assert.Error(t, err)

	_, err = PhotoFromDataURL("not a data url", "avatar")
	assert.Error(t, err)
}
