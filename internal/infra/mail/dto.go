package mail

type ConversionEmailData struct {
	LeadName     string
	CategoryName string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	dialer   dialer
}
