package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

var conversionTemplate = template.Must(template.New("conversion").Parse(`<p>Boa notícia!</p>
<p>O lead <strong>{{.LeadName}}</strong>{{if .CategoryName}} ({{.CategoryName}}){{end}} foi convertido.</p>
<p>Confira seus ganhos no app.</p>`))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// BuildConversionMessage monta a mensagem sem enviar.
func (s *EmailSender) BuildConversionMessage(to, leadName, categoryName string) (*gomail.Message, error) {
	var body bytes.Buffer
	data := ConversionEmailData{LeadName: leadName, CategoryName: categoryName}
	if err := conversionTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead convertido: %s", leadName))
	m.SetBody("text/html", body.String())
	return m, nil
}

func (s *EmailSender) SendConversion(to, leadName, categoryName string) error {
	m, err := s.BuildConversionMessage(to, leadName, categoryName)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
