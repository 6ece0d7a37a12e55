package contact

import (
	"context"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"
	"time"

	"guesthouse/internal/domain"
	"guesthouse/internal/pkg/mailer"
)

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}

// Service validates visitor inquiries, records them, and forwards them to
// outbound email (business notification plus customer acknowledgement).
type Service struct {
	messages      ContactRepositoryInterface
	mail          mailer.Mailer
	businessEmail string
	fromName      string
}

func NewService(messages ContactRepositoryInterface, mail mailer.Mailer, businessEmail, fromName string) *Service {
	return &Service{
		messages:      messages,
		mail:          mail,
		businessEmail: businessEmail,
		fromName:      fromName,
	}
}

// Submit runs the full pipeline for one inquiry. Validation failures are
// returned as a *ValidationError; anything after that is a storage or
// transport error.
func (s *Service) Submit(ctx context.Context, req ContactRequest, clientIP string) error {
	msg, vErr := s.buildMessage(req, clientIP)
	if vErr != nil {
		return vErr
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		// The inquiry still reaches the business by mail; losing the
		// archive row is not worth failing the visitor's submission.
		log.Printf("contact: failed to persist message from %s: %v", msg.Email, err)
	}

	if err := s.mail.Send(s.businessNotification(msg)); err != nil {
		return err
	}
	if err := s.mail.Send(s.customerAcknowledgement(msg)); err != nil {
		return err
	}
	return nil
}

func (s *Service) buildMessage(req ContactRequest, clientIP string) (*domain.ContactMessage, *ValidationError) {
	var errs []string

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		errs = append(errs, "Please provide a valid email address")
	}
	subject := strings.TrimSpace(req.Subject)
	if len(subject) < 5 {
		errs = append(errs, "Subject must be at least 5 characters long")
	}
	message := strings.TrimSpace(req.Message)
	if len(message) < 10 {
		errs = append(errs, "Message must be at least 10 characters long")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		errs = append(errs, "Please provide a valid phone number")
	}

	var checkIn, checkOut *time.Time
	if req.CheckIn != "" {
		t, err := time.Parse(dateLayout, req.CheckIn)
		if err != nil {
			errs = append(errs, "Check-in date is not valid")
		} else {
			checkIn = &t
		}
	}
	if req.CheckOut != "" {
		t, err := time.Parse(dateLayout, req.CheckOut)
		if err != nil {
			errs = append(errs, "Check-out date is not valid")
		} else {
			checkOut = &t
		}
	}
	if checkIn != nil && checkOut != nil {
		today := time.Now().Truncate(24 * time.Hour)
		if checkIn.Before(today) {
			errs = append(errs, "Check-in date cannot be in the past")
		}
		if !checkOut.After(*checkIn) {
			errs = append(errs, "Check-out date must be after check-in date")
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &domain.ContactMessage{
		Name:     html.EscapeString(name),
		Email:    email,
		Phone:    html.EscapeString(phone),
		Subject:  html.EscapeString(subject),
		Message:  html.EscapeString(message),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		RoomType: html.EscapeString(strings.TrimSpace(req.RoomType)),
		ClientIP: clientIP,
	}, nil
}

func (s *Service) businessNotification(msg *domain.ContactMessage) mailer.Message {
	text := fmt.Sprintf(
		"New contact form submission.\n\nFrom: %s (%s)\nPhone: %s\nSubject: %s\n\nMessage:\n%s\n\nCheck-in: %s\nCheck-out: %s\nGuests: %d\nRoom Type: %s\nIP: %s\n",
		msg.Name, msg.Email, orNotProvided(msg.Phone), msg.Subject, msg.Message,
		formatDate(msg.CheckIn), formatDate(msg.CheckOut), msg.Guests,
		orNotProvided(msg.RoomType), msg.ClientIP,
	)

	htmlBody := fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><b>Name:</b> %s</p>
<p><b>Email:</b> <a href="mailto:%s">%s</a></p>
<p><b>Phone:</b> %s</p>
<p><b>Subject:</b> %s</p>
<h3>Message</h3>
<p style="white-space: pre-line;">%s</p>
<h3>Booking Details</h3>
<p>Check-in: %s<br>Check-out: %s<br>Guests: %d<br>Room Type: %s</p>`,
		msg.Name, msg.Email, msg.Email, orNotProvided(msg.Phone), msg.Subject, msg.Message,
		formatDate(msg.CheckIn), formatDate(msg.CheckOut), msg.Guests, orNotProvided(msg.RoomType),
	)

	return mailer.Message{
		To:       s.businessEmail,
		ReplyTo:  msg.Email,
		Subject:  fmt.Sprintf("New Contact: %s - from %s", msg.Subject, msg.Name),
		TextBody: text,
		HTMLBody: htmlBody,
	}
}

func (s *Service) customerAcknowledgement(msg *domain.ContactMessage) mailer.Message {
	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for contacting %s. We have received your message regarding %q and will respond within 2-4 hours.\n\nWarm regards,\nThe %s Team\n",
		msg.Name, s.fromName, msg.Subject, s.fromName,
	)

	htmlBody := fmt.Sprintf(`<h2>Thank You for Contacting Us!</h2>
<p>Dear <b>%s</b>,</p>
<p>Thank you for reaching out to %s. We have received your message regarding
&quot;<b>%s</b>&quot; and will respond within <b>2-4 hours</b>.</p>
<p>Warm regards,<br><b>The %s Team</b></p>`,
		msg.Name, s.fromName, msg.Subject, s.fromName,
	)

	return mailer.Message{
		To:       msg.Email,
		Subject:  fmt.Sprintf("Thank you for contacting %s - We'll respond soon!", s.fromName),
		TextBody: text,
		HTMLBody: htmlBody,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "Not specified"
	}
	return t.Format("Monday, January 2, 2006")
}

func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}
