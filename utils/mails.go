package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail envoie un email via le SMTP Gmail. L'erreur est renvoyée à
// l'appelant: les expéditeurs du pipeline la journalisent sans faire échouer
// la requête.
func SendMail(email string, message []byte) error {
	from := os.Getenv("GMAIL_USER")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	if from == "" || password == "" {
		return fmt.Errorf("identifiants SMTP manquants: définir GMAIL_USER et GMAIL_APP_PASSWORD")
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message); err != nil {
		return err
	}

	LogInfo("Email envoyé avec succès à " + email)
	return nil
}
