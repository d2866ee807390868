package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_bookings_total",
			Help: "Class booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gym_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ShiftsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_shifts_created_total",
			Help: "Total number of shift rows created",
		},
	)

	InvoicesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_invoices_generated_total",
			Help: "Total number of invoices computed",
		},
	)

	AttendanceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_attendance_events_total",
			Help: "Attendance check-ins and check-outs",
		},
		[]string{"event"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordBooking counts a booking attempt. outcome is "booked" or the
// error code that rejected it.
func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordShiftsCreated(n int) {
	ShiftsCreatedTotal.Add(float64(n))
}

func RecordInvoiceGenerated() {
	InvoicesGeneratedTotal.Inc()
}

func RecordAttendance(event string) {
	AttendanceTotal.WithLabelValues(event).Inc()
}
