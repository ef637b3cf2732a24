package email

const (
	subjectContactNotificationFmt = "Новая заявка от %s - Agentic"
)
