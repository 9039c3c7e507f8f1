package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	// Send with empty text asks for multi-line input.
	Send(ctx context.Context, text string) error
	Search(query string)
	NextHit()
	PrevHit()
	JumpToHit(n int) error
	GoalMode(ctx context.Context)
	ExpenseMode(ctx context.Context)
	ExitMode()
	Refresh(ctx context.Context)
	Actions(arg string) error
	QuickAction(ctx context.Context, name string) error
	// Record with text posts it as-is; without text it asks for the fields.
	Record(ctx context.Context, text string) error
	Profile(ctx context.Context, arg string) error
	Show()
}

const helpText = `Available commands:
  send [text]        send a message (no text: multi-line input)
  search <query>     highlight matches, empty query clears
  next | prev        move between matches
  jump <n>           select match n (1-based)
  goal | expense     start a goal or spending consultation
  exit-mode          back to free chat
  quick <goal|counsel>
  actions [open|close]
  refresh            reload the conversation
  record [text]      post an expense (no text: prompt for fields)
  profile [set|clear]
  show               print the conversation
  exit | quit`

// runREPL reads commands from scanner and dispatches them to a until the
// input ends, ctx is cancelled or the user types "exit" or "quit".
//
// The prompt shows the current status from statusFn. Lines that do not
// start with a known command are sent to the coach as-is, so chatting does
// not require the "send" prefix. Handler errors are reported and the loop
// keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("coach> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "send":
			err = a.Send(ctx, rest)

		case "search", "/":
			a.Search(rest)

		case "next", "n":
			a.NextHit()

		case "prev", "p":
			a.PrevHit()

		case "jump":
			var n int
			n, err = strconv.Atoi(rest)
			if err != nil {
				err = fmt.Errorf("jump: %q is not a number", rest)
				break
			}
			err = a.JumpToHit(n)

		case "goal":
			a.GoalMode(ctx)

		case "expense":
			a.ExpenseMode(ctx)

		case "exit-mode":
			a.ExitMode()

		case "quick":
			err = a.QuickAction(ctx, rest)

		case "actions":
			err = a.Actions(rest)

		case "refresh", "sync":
			a.Refresh(ctx)

		case "record":
			err = a.Record(ctx, rest)

		case "profile":
			err = a.Profile(ctx, rest)

		case "show", "l":
			a.Show()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			err = a.Send(ctx, line)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
