package utils

import (
	"fmt"
	"html"
	"strings"

	"homecooked/config"
	"homecooked/logger"
	"homecooked/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailContent struct {
	Subject string
	HTML    string
}

// SendEmail delivers through SendGrid. Without an API key the message is only logged.
func SendEmail(to, name string, content EmailContent) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.SendgridAPIKey == "" {
		logger.Log.Infow("[EMAIL] sendgrid not configured, skipping", "to", to, "subject", content.Subject)
		return nil
	}

	from := mail.NewEmail(cfg.EmailSenderName, cfg.EmailSender)
	recipient := mail.NewEmail(name, to)
	message := mail.NewSingleEmail(from, content.Subject, recipient, plainText(content.HTML), content.HTML)

	resp, err := sendgrid.NewSendClient(cfg.SendgridAPIKey).Send(message)
	if err != nil {
		logger.Log.Errorw("[EMAIL] send failed", "to", to, "error", err)
		return err
	}
	if resp.StatusCode >= 300 {
		logger.Log.Errorw("[EMAIL] send rejected", "to", to, "status", resp.StatusCode, "body", resp.Body)
		return fmt.Errorf("sendgrid responded %d", resp.StatusCode)
	}
	logger.Log.Infow("[EMAIL] sent", "to", to, "subject", content.Subject)
	return nil
}

// plainText is a rough tag strip for the text/plain alternative.
func plainText(body string) string {
	var b strings.Builder
	inTag := false
	for _, r := range body {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Georgia, 'Times New Roman', serif; background-color: #F7F5F0; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1C3A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 2px; }
			.content { padding: 40px 30px; color: #1C3A2E; line-height: 1.6; }
			.footer { background-color: #F7F5F0; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			table { width: 100%%; border-collapse: collapse; }
			td { padding: 6px 0; border-bottom: 1px solid #EEEEEE; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>HOMECOOKED</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">Fresh ingredients, delivered weekly.</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(title), bodyContent)
}

func WelcomeEmail(name string) EmailContent {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Homecooked</strong>. Tell us about your household and we will tailor your weekly menu.</p>
	`, html.EscapeString(name))
	return EmailContent{Subject: "Welcome to Homecooked", HTML: getEmailTemplate("Welcome to the table", body)}
}

func OrderConfirmationEmail(order models.Order) EmailContent {
	var rows strings.Builder
	for _, line := range order.Lines {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>x%d</td></tr>", html.EscapeString(line.Title), line.Quantity)
	}
	delivery := "as soon as possible"
	if order.DeliveryDate != nil {
		delivery = order.DeliveryDate.Format("Monday 2 January")
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your order <strong>%s</strong> is confirmed and will arrive %s.</p>
		<table>%s</table>
		<p>Subtotal: £%.2f<br>Delivery: £%.2f<br><strong>Total: £%.2f</strong></p>
	`, html.EscapeString(order.FirstName), order.OrderNumber, delivery, rows.String(),
		order.Subtotal, order.Shipping, order.TotalPrice)
	return EmailContent{Subject: "Order confirmed: " + order.OrderNumber, HTML: getEmailTemplate("Your box is on its way", body)}
}

func BoxReminderEmail(name, weekOf string, chosen, limit int) EmailContent {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have picked <strong>%d of %d</strong> recipes for the week of %s.</p>
		<p>Finish your box before the weekend so we can send everything fresh.</p>
	`, html.EscapeString(name), chosen, limit, weekOf)
	return EmailContent{Subject: "Your box for " + weekOf + " is not complete", HTML: getEmailTemplate("Complete your box", body)}
}

// --- Triggers ---

func SendWelcomeEmail(email, name string) {
	go SendEmail(email, name, WelcomeEmail(name))
}

func SendOrderConfirmationEmail(order models.Order) {
	go SendEmail(order.Email, order.FirstName+" "+order.LastName, OrderConfirmationEmail(order))
}

func SendBoxReminderEmail(email, name, weekOf string, chosen, limit int) error {
	return SendEmail(email, name, BoxReminderEmail(name, weekOf, chosen, limit))
}
