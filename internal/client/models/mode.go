package models

import "fmt"

// MessageType is the wire tag attached to every outgoing message.
type MessageType string

const (
	MessageTypeFreeChat       MessageType = "FREE_CHAT"
	MessageTypeGoalSetting    MessageType = "GOAL_SETTING"
	MessageTypeExpenseConsult MessageType = "EXPENSE_CONSULT"
	MessageTypeExpenseRecord  MessageType = "EXPENSE_RECORD"
)

// Valid reports whether t is one of the known wire types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeFreeChat, MessageTypeGoalSetting, MessageTypeExpenseConsult, MessageTypeExpenseRecord:
		return true
	}
	return false
}

// Mode is the active guided-conversation context.
type Mode string

const (
	ModeFreeChat       Mode = "FREE_CHAT"
	ModeGoalSetting    Mode = "GOAL_SETTING"
	ModeExpenseConsult Mode = "EXPENSE_CONSULT"
)

// ParseMode converts a server-confirmed message type into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFreeChat, ModeGoalSetting, ModeExpenseConsult:
		return m, nil
	}
	return ModeFreeChat, fmt.Errorf("unknown conversation mode %q", s)
}

// MessageType returns the wire type used for messages sent in mode m.
// Unknown modes fall back to free chat.
func (m Mode) MessageType() MessageType {
	switch m {
	case ModeGoalSetting:
		return MessageTypeGoalSetting
	case ModeExpenseConsult:
		return MessageTypeExpenseConsult
	default:
		return MessageTypeFreeChat
	}
}

// Placeholder is the input prompt shown while m is active.
func (m Mode) Placeholder() string {
	switch m {
	case ModeGoalSetting:
		return "이루고 싶은 목표를 알려 주세요"
	case ModeExpenseConsult:
		return "고민되는 지출을 알려 주세요"
	default:
		return "메시지 입력"
	}
}

// Label is a short human name for m.
func (m Mode) Label() string {
	switch m {
	case ModeGoalSetting:
		return "목표 상담"
	case ModeExpenseConsult:
		return "지출 상담"
	default:
		return "자유 대화"
	}
}

// QuickAction is one entry of the quick-action bar.
type QuickAction string

const (
	QuickActionGoal    QuickAction = "goal"
	QuickActionCounsel QuickAction = "counsel"
)

// Prompt returns the suggested input text for the action.
func (a QuickAction) Prompt() string {
	switch a {
	case QuickActionGoal:
		return "나의 소비 패턴을 기반으로 목표를 추천해줘"
	case QuickActionCounsel:
		return "나의 소비 패턴에 대해 어떻게 생각해?"
	}
	return ""
}
