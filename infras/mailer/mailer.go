package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"booking-api/config"
	"booking-api/infras/otel"
	"booking-api/shared/constant"
	"booking-api/shared/timezone"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

const (
	subjectConfirmation = "Appointment Received — Loop & Logic"
	subjectJoinLink     = "Your Meeting Link — Loop & Logic"

	dateLayout = "Monday, 2 January 2006"
	timeLayout = "15:04"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<div style="font-family:Arial,sans-serif;line-height:1.6">
  <p>Hi {{.Name}},</p>
  <p>Thanks for booking an appointment with Loop &amp; Logic.</p>
  <p><strong>Date:</strong> {{.Date}}<br>
     <strong>Time:</strong> {{.Time}}<br>
     <strong>Meeting Type:</strong> {{.MeetingType}}</p>
  <p>We will send another email with your unique {{.MeetingType}} link <strong>30 minutes before</strong> the meeting.</p>
  <p>Best regards,<br>Loop &amp; Logic Team</p>
</div>
`))

var joinLinkTemplate = template.Must(template.New("joinlink").Parse(`
<div style="font-family:Arial,sans-serif;line-height:1.6">
  <p>Hi {{.Name}},</p>
  <p>Your {{.MeetingType}} call starts in about 30 minutes.</p>
  <p><a href="{{.JoinURL}}" style="display:inline-block;padding:10px 16px;background:#1e3c72;color:#fff;text-decoration:none;border-radius:6px;">Join Meeting</a></p>
  <p><strong>Date:</strong> {{.Date}}<br>
     <strong>Time:</strong> {{.Time}}</p>
  <p>See you soon!<br>Loop &amp; Logic Team</p>
</div>
`))

type templateData struct {
	Name        string
	Date        string
	Time        string
	MeetingType string
	JoinURL     string
}

// Mailer sends the two booking emails. One attempt per call, no retry and no
// queueing; the caller decides whether a failed send matters.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, name string, start time.Time, meetingType string) error
	SendJoinLink(ctx context.Context, to, name string, start time.Time, meetingType, joinURL string) error
}

type mailerImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *gomail.Client
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create SMTP client")
	}

	return &mailerImpl{
		cfg:    cfg,
		otel:   otl,
		client: client,
	}
}

func (m *mailerImpl) SendConfirmation(ctx context.Context, to, name string, start time.Time, meetingType string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.SendConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := render(confirmationTemplate, templateData{
		Name:        name,
		Date:        timezone.Format(start, dateLayout),
		Time:        timezone.Format(start, timeLayout),
		MeetingType: meetingType,
	})
	if err != nil {
		return err
	}

	return m.send(ctx, to, subjectConfirmation, body)
}

func (m *mailerImpl) SendJoinLink(ctx context.Context, to, name string, start time.Time, meetingType, joinURL string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.SendJoinLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := render(joinLinkTemplate, templateData{
		Name:        name,
		Date:        timezone.Format(start, dateLayout),
		Time:        timezone.Format(start, timeLayout),
		MeetingType: meetingType,
		JoinURL:     joinURL,
	})
	if err != nil {
		return err
	}

	return m.send(ctx, to, subjectJoinLink, body)
}

func (m *mailerImpl) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()

	if err := msg.From(m.cfg.SMTP.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")

	return nil
}

func render(tpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer

	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	return buf.String(), nil
}
