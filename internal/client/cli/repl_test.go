package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(s string) { f.calls = append(f.calls, s) }

func (f *fakeExec) Send(ctx context.Context, text string) error {
	f.record("send:" + text)
	return f.err
}
func (f *fakeExec) Search(query string) { f.record("search:" + query) }
func (f *fakeExec) NextHit()            { f.record("next") }
func (f *fakeExec) PrevHit()            { f.record("prev") }
func (f *fakeExec) JumpToHit(n int) error {
	f.record(fmt.Sprintf("jump:%d", n))
	return nil
}
func (f *fakeExec) GoalMode(ctx context.Context)    { f.record("goal") }
func (f *fakeExec) ExpenseMode(ctx context.Context) { f.record("expense") }
func (f *fakeExec) ExitMode()                       { f.record("exit-mode") }
func (f *fakeExec) Refresh(ctx context.Context)     { f.record("refresh") }
func (f *fakeExec) Actions(arg string) error {
	f.record("actions:" + arg)
	return nil
}
func (f *fakeExec) QuickAction(ctx context.Context, name string) error {
	f.record("quick:" + name)
	return nil
}
func (f *fakeExec) Record(ctx context.Context, text string) error {
	f.record("record:" + text)
	return nil
}
func (f *fakeExec) Profile(ctx context.Context, arg string) error {
	f.record("profile:" + arg)
	return nil
}
func (f *fakeExec) Show() { f.record("show") }

// capturePrint replaces printlnFn for the duration of the test.
func capturePrint(t *testing.T) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := capturePrint(t)

	input := strings.Join([]string{
		"help",
		"",
		"send 안녕하세요",
		"search  카드 ",
		"next",
		"prev",
		"jump 2",
		"goal",
		"expense",
		"exit-mode",
		"quick goal",
		"actions close",
		"refresh",
		"record",
		"record 편의점 4,200원",
		"profile set",
		"show",
		"오늘 커피 샀어",
		"quit",
		"show",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{
		"send:안녕하세요",
		"search:카드",
		"next",
		"prev",
		"jump:2",
		"goal",
		"expense",
		"exit-mode",
		"quick:goal",
		"actions:close",
		"refresh",
		"record:",
		"record:편의점 4,200원",
		"profile:set",
		"show",
		"send:오늘 커피 샀어",
	}, exec.calls)
	assert.Contains(t, out.String(), "Available commands")
	assert.Contains(t, out.String(), "coach> status > ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_BadJumpAndErrors(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{err: fmt.Errorf("boom")}
	input := "jump x\nsend hi\n"
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{"send:hi"}, exec.calls)
	assert.Contains(t, out.String(), `jump: "x" is not a number`)
	assert.Contains(t, out.String(), "Error: boom")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("send hi\n")))
	assert.Empty(t, exec.calls)
}
