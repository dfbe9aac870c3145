package notification

import (
	"context"
	"fmt"

	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/infrastructure/config"
	"gopkg.in/gomail.v2"
)

// MailSender sends a single message. *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends transactional emails to customers in their preferred language.
// All sends are best-effort from the caller's point of view: failures are
// returned but never block the business operation.
type Mailer struct {
	sender MailSender
	from   string
}

// NewMailer creates a Mailer from SMTP configuration
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// NewMailerWithSender creates a Mailer with a custom sender, used in tests
func NewMailerWithSender(sender MailSender, from string) *Mailer {
	return &Mailer{sender: sender, from: from}
}

// OrderCreated emails the order confirmation with the invoice summary
func (m *Mailer) OrderCreated(ctx context.Context, user *identity.User, order *ordering.Order, invoice *ordering.Invoice) error {
	var subject, body string
	if order.Language == shared.LanguageAlbanian {
		subject = fmt.Sprintf("Porosia juaj %s u pranua", order.OrderNumber)
		body = fmt.Sprintf(
			"Përshëndetje %s,<br><br>Faleminderit për porosinë tuaj <b>%s</b>.<br>"+
				"Nëntotali: %s EUR<br>TVSH: %s EUR<br>Totali: %s EUR<br><br>"+
				"Fatura: %s<br><br>Do t'ju njoftojmë kur porosia të konfirmohet.",
			user.Name, order.OrderNumber,
			order.Subtotal.StringFixed(2), order.Tax.StringFixed(2), order.Total.StringFixed(2),
			invoice.InvoiceNumber,
		)
	} else {
		subject = fmt.Sprintf("Your order %s has been received", order.OrderNumber)
		body = fmt.Sprintf(
			"Hello %s,<br><br>Thank you for your order <b>%s</b>.<br>"+
				"Subtotal: %s EUR<br>VAT: %s EUR<br>Total: %s EUR<br><br>"+
				"Invoice: %s<br><br>We will let you know once your order is confirmed.",
			user.Name, order.OrderNumber,
			order.Subtotal.StringFixed(2), order.Tax.StringFixed(2), order.Total.StringFixed(2),
			invoice.InvoiceNumber,
		)
	}
	return m.send(user.Email, subject, body)
}

// OrderStatusChanged emails the customer about an order lifecycle change
func (m *Mailer) OrderStatusChanged(ctx context.Context, user *identity.User, order *ordering.Order, from, to ordering.Status) error {
	entry, err := ordering.TimelineEntryFor(order, to)
	if err != nil {
		return err
	}

	var subject, body string
	if order.Language == shared.LanguageAlbanian {
		subject = fmt.Sprintf("Porosia %s: %s", order.OrderNumber, entry.TitleSq)
		body = fmt.Sprintf("Përshëndetje %s,<br><br>%s<br><br>Porosia: %s",
			user.Name, entry.DescriptionSq, order.OrderNumber)
	} else {
		subject = fmt.Sprintf("Order %s: %s", order.OrderNumber, entry.Title)
		body = fmt.Sprintf("Hello %s,<br><br>%s<br><br>Order: %s",
			user.Name, entry.Description, order.OrderNumber)
	}
	return m.send(user.Email, subject, body)
}

// RepairCreated emails the repair request confirmation. EasyMail-In requests
// also carry the mail-in shipping instructions.
func (m *Mailer) RepairCreated(ctx context.Context, user *identity.User, r *repair.Repair) error {
	var subject, body string
	if r.Language == shared.LanguageAlbanian {
		subject = fmt.Sprintf("Kërkesa për riparim %s u pranua", r.RepairNumber)
		body = fmt.Sprintf(
			"Përshëndetje %s,<br><br>Kërkesa juaj për riparimin e <b>%s</b> u regjistrua me numrin <b>%s</b>.",
			user.Name, r.DeviceType, r.RepairNumber)
		if r.IsEasyMailIn {
			body += "<br><br>Ju kemi dërguar udhëzimet EasyMail-In: paketoni pajisjen dhe dërgojeni në adresën tonë, ne mbulojmë transportin."
		}
	} else {
		subject = fmt.Sprintf("Repair request %s received", r.RepairNumber)
		body = fmt.Sprintf(
			"Hello %s,<br><br>Your repair request for <b>%s</b> has been registered as <b>%s</b>.",
			user.Name, r.DeviceType, r.RepairNumber)
		if r.IsEasyMailIn {
			body += "<br><br>EasyMail-In instructions: pack your device and ship it to our address, shipping is on us."
		}
	}
	return m.send(user.Email, subject, body)
}

// RepairStatusChanged emails the customer about a repair lifecycle change
func (m *Mailer) RepairStatusChanged(ctx context.Context, user *identity.User, r *repair.Repair, from, to repair.Status) error {
	entry, err := repair.TimelineEntryFor(r, to)
	if err != nil {
		return err
	}

	var subject, body string
	if r.Language == shared.LanguageAlbanian {
		subject = fmt.Sprintf("Riparimi %s: %s", r.RepairNumber, entry.TitleSq)
		body = fmt.Sprintf("Përshëndetje %s,<br><br>%s<br><br>Riparimi: %s",
			user.Name, entry.DescriptionSq, r.RepairNumber)
	} else {
		subject = fmt.Sprintf("Repair %s: %s", r.RepairNumber, entry.Title)
		body = fmt.Sprintf("Hello %s,<br><br>%s<br><br>Repair: %s",
			user.Name, entry.Description, r.RepairNumber)
	}
	return m.send(user.Email, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
