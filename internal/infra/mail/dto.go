package mail

type ResetEmailData struct {
	Token     string
	ExpiresAt string
}

type ConversionEmailData struct {
	Company string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
