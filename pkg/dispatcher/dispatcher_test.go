package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/filemanager/pkg/adapters/logger"
	"github.com/user/filemanager/pkg/adapters/osfilesystem"
	"github.com/user/filemanager/pkg/mocks"
	"github.com/user/filemanager/pkg/operations"
	"github.com/user/filemanager/pkg/ports"
)

const menu = "\n--- File Manager Menu ---\n" +
	"1. List Directory\n" +
	"2. Copy File\n" +
	"3. Move File\n" +
	"4. Delete File\n" +
	"5. Search Files\n" +
	"6. Create Directory\n" +
	"7. Delete Directory\n" +
	"8. Exit\n" +
	"Enter your choice: "

type fakeHandler struct {
	title string
	res   operations.Result
	err   error
	calls int
}

func (h *fakeHandler) Title() string { return h.title }

func (h *fakeHandler) Handle(ctx context.Context, console ports.Console) (operations.Result, error) {
	h.calls++
	return h.res, h.err
}

func fakeTable() []*fakeHandler {
	var fakes []*fakeHandler
	for _, h := range operations.Table(osfilesystem.New(), logger.NewNoop()) {
		fakes = append(fakes, &fakeHandler{
			title: h.Title(),
			res:   operations.Result{Status: operations.StatusCompleted, Message: h.Title() + " done"},
		})
	}
	return fakes
}

func asHandlers(fakes []*fakeHandler) []operations.Handler {
	handlers := make([]operations.Handler, len(fakes))
	for i, f := range fakes {
		handlers[i] = f
	}
	return handlers
}

type recorded struct {
	operation string
	outcome   Outcome
	message   string
}

type memRecorder struct {
	entries []recorded
}

func (r *memRecorder) Record(operation string, outcome Outcome, message string) {
	r.entries = append(r.entries, recorded{operation, outcome, message})
}

func TestRunExitsOnEight(t *testing.T) {
	console := mocks.NewConsole("8", "1")
	d := New(console, asHandlers(fakeTable()), logger.NewNoop())

	require.NoError(t, d.Run(context.Background()))

	expected := "Welcome to the File Manager!\n" + menu + "Thank you for using File Manager. Goodbye!\n"
	assert.Equal(t, expected, console.Output())
	assert.Equal(t, 1, console.Remaining())
}

func TestRunDispatchesEachChoice(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			fakes := fakeTable()
			console := mocks.NewConsole(fmt.Sprint(n), "8")

			require.NoError(t, New(console, asHandlers(fakes), logger.NewNoop()).Run(context.Background()))

			for i, f := range fakes {
				if i == n-1 {
					assert.Equal(t, 1, f.calls, f.title)
				} else {
					assert.Zero(t, f.calls, f.title)
				}
			}
			assert.Contains(t, console.Output(), fakes[n-1].title+" done\n")
		})
	}
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	fakes := fakeTable()
	console := mocks.NewConsole("abc", "", "  ", "0", "9", "-3", "2 extra", "8")

	require.NoError(t, New(console, asHandlers(fakes), logger.NewNoop()).Run(context.Background()))

	out := console.Output()
	assert.Equal(t, 1, strings.Count(out, "Invalid input. Please enter a number between 1 and 8.\nEnter your choice: "))
	assert.Equal(t, 3, strings.Count(out, "Invalid option. Please try again.\nEnter your choice: "))
	assert.Equal(t, 1, fakes[1].calls)
	assert.Equal(t, 2, strings.Count(out, "--- File Manager Menu ---"))
}

func TestRunReportsHandlerErrorAndContinues(t *testing.T) {
	fakes := fakeTable()
	fakes[3].err = errors.New("permission denied")
	rec := &memRecorder{}
	console := mocks.NewConsole("4", "1", "8")

	d := New(console, asHandlers(fakes), logger.NewNoop()).WithRecorder(rec)
	require.NoError(t, d.Run(context.Background()))

	out := console.Output()
	assert.Contains(t, out, "An error occurred: permission denied\nPlease try again or choose a different operation.\n")
	assert.Equal(t, 1, fakes[0].calls)
	assert.Equal(t, []recorded{
		{"Delete File", OutcomeFailed, "permission denied"},
		{"List Directory", OutcomeCompleted, "List Directory done"},
	}, rec.entries)
}

func TestRunRecordsRejections(t *testing.T) {
	fakes := fakeTable()
	fakes[5].res = operations.Result{Status: operations.StatusRejected, Message: "Directory already exists."}
	rec := &memRecorder{}
	console := mocks.NewConsole("6", "8")

	require.NoError(t, New(console, asHandlers(fakes), logger.NewNoop()).WithRecorder(rec).Run(context.Background()))

	assert.Contains(t, console.Output(), "Directory already exists.\n")
	assert.Equal(t, []recorded{{"Create Directory", OutcomeRejected, "Directory already exists."}}, rec.entries)
}

func TestRunInputClosed(t *testing.T) {
	console := mocks.NewConsole("abc")
	err := New(console, asHandlers(fakeTable()), logger.NewNoop()).Run(context.Background())
	assert.ErrorIs(t, err, ports.ErrInputClosed)

	fakes := fakeTable()
	fakes[0].err = ports.ErrInputClosed
	console = mocks.NewConsole("1", "8")
	err = New(console, asHandlers(fakes), logger.NewNoop()).Run(context.Background())
	assert.ErrorIs(t, err, ports.ErrInputClosed)
	assert.NotContains(t, console.Output(), "An error occurred")
	assert.Equal(t, 1, console.Remaining())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	console := mocks.NewConsole("8")
	err := New(console, asHandlers(fakeTable()), logger.NewNoop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Welcome to the File Manager!\n", console.Output())
}

func TestSessionAgainstRealDirectory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("alpha"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.log"), []byte("bravo"), 0644))
	sub := filepath.Join(root, "sub")

	console := mocks.NewConsole(
		"6", sub, // create sub
		"2", src, filepath.Join(sub, "a.csv"), // copy into sub
		"3", src, sub, // move onto a directory is rejected
		"5", root, "a", // search
		"7", sub, // not empty
		"4", filepath.Join(sub, "a.csv"),
		"7", sub,
		"8",
	)

	fs := osfilesystem.New()
	d := New(console, operations.Table(fs, logger.NewNoop()), logger.NewNoop())
	require.NoError(t, d.Run(context.Background()))

	out := console.Output()
	for _, want := range []string{
		"Directory created successfully.\n",
		"File copied successfully.\n",
		"Destination path must include a filename.\n",
		"Search complete.\n",
		"Directory is not empty. Cannot delete.\n",
		"File deleted successfully.\n",
		"Directory deleted successfully.\n",
		"Thank you for using File Manager. Goodbye!\n",
	} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, out, src+"\n")
	assert.Contains(t, out, filepath.Join(sub, "a.csv")+"\n")
	assert.NotContains(t, out, filepath.Join(root, "b.log")+"\n")

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))
	_, err = os.Stat(sub)
	assert.True(t, os.IsNotExist(err))
}
