package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lightlabcreation/gym-backend/internal/logger"
	"github.com/lightlabcreation/gym-backend/internal/metrics"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"

	maxTries = 3

	TypeBookingConfirmation = "booking_confirmation"
	TypeBookingCancellation = "booking_cancellation"
	TypeTest                = "test"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Service queues emails in a redis list and delivers them over SMTP from a
// single worker started with Start.
type Service struct {
	redis      *redis.Client
	cfg        Config
	send       sendFunc
	retryDelay time.Duration
	popTimeout time.Duration
}

func New(cfg Config, rdb *redis.Client) *Service {
	return &Service{
		redis:      rdb,
		cfg:        cfg,
		send:       smtp.SendMail,
		retryDelay: 5 * time.Second,
		popTimeout: 2 * time.Second,
	}
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.redis.LPush(ctx, queueKey, string(data)).Err()
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	if err := s.enqueue(ctx, job); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_failed")
		return err
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Info("email queued", "type", emailType, "to", to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, s.popTimeout, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	if err := s.deliver(job); err != nil {
		logger.Warn("email delivery failed", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			metrics.RecordEmail(job.Type, "retry")
			s.wait(ctx)
			if err := s.enqueue(context.Background(), job); err != nil {
				logger.Errorf("Failed to requeue email to %s: %v", job.To, err)
			}
			return
		}

		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(job, err)
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

func (s *Service) wait(ctx context.Context) {
	if s.retryDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}
}

func (s *Service) message(job EmailJob) []byte {
	msg := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	msg += fmt.Sprintf("To: %s\r\n", job.To)
	msg += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	msg += "\r\n" + job.Body
	return []byte(msg)
}

func (s *Service) deliver(job EmailJob) error {
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return s.send(addr, auth, s.cfg.From, []string{job.To}, s.message(job))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, string(data))
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

// QueueLength reports the pending jobs and updates the queue gauge.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

const timeLayout = "Mon, Jan 2, 2006 at 3:04 PM"

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, className string, when time.Time) error {
	subject := "Class Booked - " + className
	body := fmt.Sprintf(`Hi %s,

Your class booking is confirmed!

Class: %s
Time: %s

See you at the gym!

- %s`, name, className, when.Format(timeLayout), s.cfg.FromName)

	return s.Send(ctx, TypeBookingConfirmation, to, name, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, to, name, className string, when time.Time) error {
	subject := "Booking Cancelled - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Class: %s
Time: %s

- %s`, name, className, when.Format(timeLayout), s.cfg.FromName)

	return s.Send(ctx, TypeBookingCancellation, to, name, subject, body)
}
