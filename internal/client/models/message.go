// Package models defines the data types shared by the Finz coach client:
// transcript messages and display items, search hits, conversation modes
// and the wire records exchanged with the Coach API.
package models

// Sender identifies who authored a message in the transcript.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderCoach Sender = "coach"
)

// Wire sender codes. Anything other than ServerSenderUser is a coach reply.
const (
	ServerSenderUser = "USER"
	ServerSenderAI   = "AI"
)

// SenderFromServer maps a server sender code to a transcript Sender.
func SenderFromServer(code string) Sender {
	if code == ServerSenderUser {
		return SenderUser
	}
	return SenderCoach
}

// Message is one immutable transcript entry. Date and Time are already in
// the display zone ("YYYY-MM-DD" and "HH:MM").
type Message struct {
	ID     string
	Date   string
	Time   string
	Sender Sender
	Text   string
}

// ItemKind tags a DisplayItem variant.
type ItemKind int

const (
	KindDateSeparator ItemKind = iota
	KindMessage
)

// DisplayItem is either a date separator or a message. For separators only
// Date is meaningful; for messages Date mirrors Message.Date.
type DisplayItem struct {
	Kind    ItemKind
	Key     string
	Date    string
	Message Message
}

// DateSeparator builds a separator item for date.
func DateSeparator(date string) DisplayItem {
	return DisplayItem{Kind: KindDateSeparator, Key: "d-" + date, Date: date}
}

// MessageItem wraps m into a display item.
func MessageItem(m Message) DisplayItem {
	return DisplayItem{Kind: KindMessage, Key: "m-" + m.ID, Date: m.Date, Message: m}
}

// IsSeparator reports whether the item is a date separator.
func (i DisplayItem) IsSeparator() bool { return i.Kind == KindDateSeparator }
