package mail

type ConfirmationEmailData struct {
	Name    string
	Company string
}

type SlideDeckEmailData struct {
	Name     string
	DeckLink string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
