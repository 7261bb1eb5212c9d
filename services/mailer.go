package services

import (
	"fmt"

	"warehouse-console/config"

	"gopkg.in/gomail.v2"
)

// SendReportMail forwards a help ticket to the support inbox. Callers run it
// off the request path and surface the outcome through the Notifier.
func SendReportMail(userName, email, reportType, content string) error {
	if config.SMTPHost == "" || config.ReportInbox == "" {
		return fmt.Errorf("mail not configured")
	}

	subject := "Nowe zgloszenie: " + reportType
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Nowe zgloszenie z konsoli magazynowej</h3>
				<p>Uzytkownik: <strong>%s</strong> (%s)</p>
				<p>Typ: <strong>%s</strong></p>
				<p>%s</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, userName, email, reportType, content)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.ReportInbox)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("Failed to send report mail:", err)
		return err
	}

	return nil
}
