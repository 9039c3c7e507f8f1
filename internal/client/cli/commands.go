package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Finz-2025/finz-coach/internal/client/models"
	"github.com/Finz-2025/finz-coach/internal/common"
)

// Send posts text to the coach in the current mode and prints the updated
// conversation. Without text the message is read as multi-line input.
func (a *App) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		var err error
		text, err = GetMultiline(a.scanner, a.store.Snapshot().Mode.Placeholder(), a.out)
		if err != nil {
			return err
		}
	}
	a.store.SendToCoach(ctx, a.userID, text)
	a.Show()
	return nil
}

// Search highlights query in the conversation. An empty query clears it.
func (a *App) Search(query string) {
	a.store.Search(query)
	a.Show()
}

func (a *App) NextHit() {
	a.store.NextHit()
	a.printHit()
}

func (a *App) PrevHit() {
	a.store.PrevHit()
	a.printHit()
}

// JumpToHit selects the n-th match, counting from 1.
func (a *App) JumpToHit(n int) error {
	total := len(a.store.Snapshot().Hits)
	if n < 1 || n > total {
		return fmt.Errorf("jump: no match %d (have %d)", n, total)
	}
	a.store.JumpToHit(n - 1)
	a.printHit()
	return nil
}

// printHit prints the message holding the current match.
func (a *App) printHit() {
	hit, ok := a.store.CurrentHit()
	if !ok {
		printlnFn(a.status())
		return
	}
	st := a.store.Snapshot()
	item := st.Items[hit.ItemIndex]
	printlnFn(fmt.Sprintf("%d/%d  %s %s", st.HitIndex+1, len(st.Hits), item.Date, item.Message.Time))
	printlnFn(a.renderer.Transcript(st))
}

func (a *App) GoalMode(ctx context.Context) {
	a.store.EnterGoalMode(ctx, a.userID)
	a.printMode()
}

func (a *App) ExpenseMode(ctx context.Context) {
	a.store.EnterExpenseMode(ctx, a.userID)
	a.printMode()
}

func (a *App) ExitMode() {
	a.store.ExitMode()
	a.printMode()
}

func (a *App) printMode() {
	st := a.store.Snapshot()
	a.Show()
	printlnFn(fmt.Sprintf("[%s] %s", st.Mode.Label(), st.Mode.Placeholder()))
}

func (a *App) Refresh(ctx context.Context) {
	a.store.RefreshHistory(ctx, a.userID)
	a.Show()
}

// Actions opens, closes or toggles the quick-action bar.
func (a *App) Actions(arg string) error {
	switch arg {
	case "":
		a.store.ToggleActions()
	case "open":
		a.store.SetActionsOpen(true)
	case "close":
		a.store.SetActionsOpen(false)
	default:
		return fmt.Errorf("actions: unknown argument %q", arg)
	}
	if bar := a.renderer.QuickActions(a.store.Snapshot()); bar != "" {
		printlnFn(bar)
	}
	return nil
}

// QuickAction runs one entry of the quick-action bar.
func (a *App) QuickAction(ctx context.Context, name string) error {
	qa := models.QuickAction(name)
	if qa.Prompt() == "" {
		return fmt.Errorf("quick: unknown action %q (goal|counsel)", name)
	}
	printlnFn("›", qa.Prompt())
	a.store.PickQuickAction(ctx, a.userID, qa)
	a.printMode()
	return nil
}

// Record posts an expense into the conversation together with the coach's
// reply. Free text is posted as-is; otherwise the fields are prompted for.
func (a *App) Record(ctx context.Context, text string) error {
	if text != "" {
		a.store.PostExpenseText(text, "", "")
		a.Show()
		return nil
	}

	w := a.out
	name, err := GetSimpleText(a.scanner, "지출 내역", w)
	if err != nil {
		return err
	}
	rawAmount, err := GetSimpleText(a.scanner, "금액 (원)", w)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(rawAmount, ",", ""))
	if err != nil {
		return fmt.Errorf("%w: amount %q", common.ErrorValidation, rawAmount)
	}
	category, err := GetSimpleText(a.scanner, "카테고리 (예: cafe)", w)
	if err != nil {
		return err
	}
	method, err := GetSimpleText(a.scanner, "결제 수단", w)
	if err != nil {
		return err
	}

	now := a.norm.NowLocal()
	rec := models.ExpenseRecord{
		Name:          name,
		Amount:        amount,
		Category:      category,
		PaymentMethod: method,
		Date:          now.Date,
		Time:          now.Time,
	}
	a.log.Debug(ctx, "posting expense record", "category", category, "amount", amount.String())
	a.store.PostExpenseRecord(rec)
	a.Show()
	return nil
}

// Profile shows, edits or clears the local profile. Saving or clearing a
// profile that changes the user remounts the conversation.
func (a *App) Profile(ctx context.Context, arg string) error {
	if a.profiles == nil {
		return errors.New("profile: no profile store configured")
	}
	switch arg {
	case "", "show":
		p, err := a.profiles.Load(ctx)
		if errors.Is(err, common.ErrorNoProfile) {
			printlnFn("No profile saved. Using user", a.userID)
			return nil
		}
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("%s (user %d) %s %s 예산 %s원", p.Nickname, p.UserID, p.AgeGroup, p.Job, models.FormatWon(p.Budget)))
		return nil

	case "set":
		p, err := a.promptProfile()
		if err != nil {
			return err
		}
		if err := a.profiles.Save(ctx, p); err != nil {
			return err
		}
		printlnFn("Profile saved.")
		a.nickname = p.Nickname
		a.switchUser(ctx, p.UserID)
		return nil

	case "clear":
		if err := a.profiles.Clear(ctx); err != nil {
			return err
		}
		printlnFn("Profile cleared.")
		a.nickname = ""
		a.switchUser(ctx, a.config.UserID)
		return nil
	}
	return fmt.Errorf("profile: unknown argument %q (show|set|clear)", arg)
}

func (a *App) promptProfile() (models.Profile, error) {
	w := a.out
	var p models.Profile

	nickname, err := GetSimpleText(a.scanner, "닉네임", w)
	if err != nil {
		return p, err
	}
	rawID, err := GetSimpleText(a.scanner, fmt.Sprintf("사용자 ID (기본 %d)", a.userID), w)
	if err != nil {
		return p, err
	}
	userID := a.userID
	if rawID != "" {
		if userID, err = strconv.ParseInt(rawID, 10, 64); err != nil {
			return p, fmt.Errorf("%w: user id %q", common.ErrorValidation, rawID)
		}
	}
	ageGroup, err := GetSimpleText(a.scanner, "연령대", w)
	if err != nil {
		return p, err
	}
	job, err := GetSimpleText(a.scanner, "직업", w)
	if err != nil {
		return p, err
	}
	rawBudget, err := GetSimpleText(a.scanner, "월 예산 (원)", w)
	if err != nil {
		return p, err
	}
	budget := decimal.Zero
	if rawBudget != "" {
		if budget, err = decimal.NewFromString(strings.ReplaceAll(rawBudget, ",", "")); err != nil {
			return p, fmt.Errorf("%w: budget %q", common.ErrorValidation, rawBudget)
		}
	}

	return models.Profile{
		UserID:   userID,
		Nickname: nickname,
		AgeGroup: ageGroup,
		Job:      job,
		Budget:   budget,
	}, nil
}

// switchUser remounts the conversation for id when it differs from the
// current user.
func (a *App) switchUser(ctx context.Context, id int64) {
	if id == a.userID {
		return
	}
	a.log.Info(ctx, "switching user", "from", a.userID, "to", id)
	a.unmount()
	a.userID = id
	a.lastErr = nil
	a.mount()
	a.store.LoadInitial(ctx, a.userID)
	a.Show()
}

// Show prints the conversation and the quick-action bar.
func (a *App) Show() {
	st := a.store.Snapshot()
	if len(st.Items) == 0 {
		printlnFn("(대화가 없어요. 코치에게 말을 걸어 보세요.)")
	} else {
		printlnFn(a.renderer.Transcript(st))
	}
	if bar := a.renderer.QuickActions(st); bar != "" {
		printlnFn(bar)
	}
}
