package store

// Coach-voice texts injected into the transcript when something fails
// locally or when an expense is auto-posted.
const (
	msgGoalModeFailed    = "목표 상담을 시작하지 못했어요. 잠시 후 다시 시도해 주세요."
	msgExpenseModeFailed = "지출 상담을 시작하지 못했어요. 잠시 후 다시 시도해 주세요."
	msgSendFailed        = "메시지를 전송하지 못했어요. 네트워크 상태를 확인하고 다시 보내 주세요."

	msgExpenseCafe      = "카페 지출이 늘고 있어요. 이번 주는 1회로 제한해볼까요?"
	msgExpenseLarge     = "이번 지출은 금액이 조금 커요. 주간 예산을 다시 점검해볼까요?"
	msgExpenseEncourage = "좋아요! 작은 지출도 꾸준히 기록하면 습관이 됩니다."
	msgExpenseRecorded  = "지출을 기록했어요. 이번 주 예산 안에서 잘 관리 중이에요!"
)
