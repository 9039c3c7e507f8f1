package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Finz-2025/finz-coach/internal/client/render"
)

// Test seams for the terminal. In tests replace them with stubs to avoid
// touching a real TTY.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getSize      = term.GetSize
)

// GetSimpleText prints a prompt to w and reads a single line from sc.
// Surrounding whitespace is trimmed. io.EOF is returned when input ends.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(sc *bufio.Scanner, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sc.Text()), nil
}

// GetMultiline prints a prompt to w and reads lines until an empty line or
// the end of input. The lines are joined with '\n' and the result trimmed.
func GetMultiline(sc *bufio.Scanner, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetSecret prints prompt to w and reads a value from the terminal on fd
// without echo. A newline is printed after the read to keep the UI tidy.
func GetSecret(fd int, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	b, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// PromptAccessToken asks for the API access token when stdin is a
// terminal. It returns "" without prompting otherwise.
func PromptAccessToken(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", nil
	}
	return GetSecret(fd, "Access token", w)
}

// terminalTheme picks colours and wrap width for out. Anything that is not
// a terminal gets the plain theme and no wrapping.
func terminalTheme(out io.Writer) (render.Theme, int) {
	f, ok := out.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return render.PlainTheme(), 0
	}
	theme := render.DefaultTheme()
	width, _, err := getSize(int(f.Fd()))
	if err != nil {
		return theme, 0
	}
	return theme, width
}
