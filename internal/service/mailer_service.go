package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"mka-cortes-backend/config"
	"mka-cortes-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrMailerNotConfigured = errors.New("mailer is not configured")
	ErrInvalidMailInput    = errors.New("invalid booking email input")
)

// BookingEmail carries the fields interpolated into the admin
// notification. Every field is HTML-escaped before templating.
type BookingEmail struct {
	ClientName   string
	ClientPhone  string
	BookingDate  time.Time
	BookingTime  string
	HaircutStyle string
	Comment      *string
}

// MailerService sends the "new booking" notification to the shop admin
// through the Resend HTTP API.
type MailerService struct {
	cfg        config.MailConfig
	httpClient *http.Client
	log        *logrus.Logger
}

func NewMailerService(cfg config.MailConfig, log *logrus.Logger) *MailerService {
	return &MailerService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendBookingEmail validates the input shape, renders the notification
// body and posts it to Resend. All interpolated values are escaped; the
// phone is reduced to digits before it is embedded in the wa.me link.
func (s *MailerService) SendBookingEmail(ctx context.Context, email BookingEmail) error {
	if s.cfg.APIKey == "" || s.cfg.AdminEmail == "" {
		return ErrMailerNotConfigured
	}
	if email.ClientName == "" || email.ClientPhone == "" || email.BookingTime == "" || email.HaircutStyle == "" || email.BookingDate.IsZero() {
		return ErrInvalidMailInput
	}

	body := resendRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail),
		To:      []string{s.cfg.AdminEmail},
		Subject: "Novo agendamento confirmado",
		HTML:    renderBookingEmail(email),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mail API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail API returned status %d: %s", resp.StatusCode, string(raw))
	}

	s.log.Infof("Booking notification email sent for %s", email.ClientName)
	return nil
}

func renderBookingEmail(email BookingEmail) string {
	name := html.EscapeString(email.ClientName)
	phone := html.EscapeString(email.ClientPhone)
	phoneDigits := entity.NormalizePhone(email.ClientPhone)
	date := email.BookingDate.Format("02/01/2006")
	slot := html.EscapeString(email.BookingTime)
	style := html.EscapeString(email.HaircutStyle)

	var buf bytes.Buffer
	buf.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	buf.WriteString(`<h1>Novo Agendamento</h1>`)
	buf.WriteString(`<h2>Detalhes do Cliente</h2><table style="width: 100%;">`)
	fmt.Fprintf(&buf, `<tr><td><strong>Nome Completo:</strong></td><td>%s</td></tr>`, name)
	fmt.Fprintf(&buf, `<tr><td><strong>Telefone/WhatsApp:</strong></td><td><a href="https://wa.me/%s">%s</a></td></tr>`, phoneDigits, phone)
	buf.WriteString(`</table><h2>Informações do Agendamento</h2><table style="width: 100%;">`)
	fmt.Fprintf(&buf, `<tr><td><strong>Data:</strong></td><td>%s</td></tr>`, date)
	fmt.Fprintf(&buf, `<tr><td><strong>Horário:</strong></td><td>%s</td></tr>`, slot)
	fmt.Fprintf(&buf, `<tr><td><strong>Tipo de Corte/Serviço:</strong></td><td>%s</td></tr>`, style)
	buf.WriteString(`</table>`)
	if email.Comment != nil && *email.Comment != "" {
		fmt.Fprintf(&buf, `<h2>Observações Adicionais</h2><p>%s</p>`, html.EscapeString(*email.Comment))
	}
	buf.WriteString(`<p style="color: #999; font-size: 12px;">Este é um e-mail automático do sistema de agendamentos MkA Cortes</p>`)
	buf.WriteString(`</div>`)
	return buf.String()
}
