package notifier

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/logger"
)

// Sender entrega un correo ya construido a un destinatario
type Sender func(recipient, msg string) error

// Notifier sends run reports by email. An empty recipient disables it.
type Notifier struct {
	Recipient string
	Send      Sender
}

// New usa el binario msmtp del sistema
func New(recipient string) *Notifier {
	return &Notifier{Recipient: recipient, Send: sendMsmtp}
}

// SendAlert sends an email alert. It assumes msmtp is configured correctly on the host.
func (n *Notifier) SendAlert(subject, body string) error {
	if n.Recipient == "" {
		logger.Debug("%s", i18n.T("notifier_skipped"))
		return nil
	}

	// To: <recipient>
	// Subject: <subject>
	//
	// <body>
	msg := fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", n.Recipient, subject, body)

	logger.Info(i18n.T("notifier_sending"), n.Recipient)
	return n.Send(n.Recipient, msg)
}

func sendMsmtp(recipient, msg string) error {
	if _, err := exec.LookPath("msmtp"); err != nil {
		return errors.New(i18n.T("notifier_no_binary"))
	}

	cmd := exec.Command("msmtp", recipient)
	cmd.Stdin = strings.NewReader(msg)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf(i18n.T("notifier_fail"), err, string(output))
	}
	return nil
}
