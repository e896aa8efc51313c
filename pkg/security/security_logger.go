package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventContactSubmitted        EventType = "contact_submitted"
	EventContactDispatchFailed   EventType = "contact_dispatch_failed"
	EventContactValidationFailed EventType = "contact_validation_failed"
	EventContactInFlightRejected EventType = "contact_in_flight_rejected"
	EventRateLimitTriggered      EventType = "rate_limit_triggered"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip", "session"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for audit-relevant events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(l *zap.Logger, serviceName, environment string) *SecurityLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &SecurityLogger{
		zapLogger:   l.Named("security"),
		serviceName: serviceName,
		environment: environment,
	}
}

// NopLogger discards every event.
func NopLogger() *SecurityLogger {
	return NewSecurityLogger(zap.NewNop(), "", "")
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventContactSubmitted:
		level = zapcore.InfoLevel
	case EventContactValidationFailed, EventContactInFlightRejected, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventContactDispatchFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogContactSubmitted records an acknowledged dispatch.
func (sl *SecurityLogger) LogContactSubmitted(ctx context.Context, email string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventContactSubmitted,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
	})
}

// LogContactDispatchFailed records a failed dispatch with its cause.
func (sl *SecurityLogger) LogContactDispatchFailed(ctx context.Context, email string, err error) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventContactDispatchFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		Details:      map[string]interface{}{"error": err.Error()},
	})
}

// LogContactValidationFailed records which fields failed, never their values.
func (sl *SecurityLogger) LogContactValidationFailed(ctx context.Context, fields []string) {
	sl.Log(ctx, SecurityEvent{
		Event:   EventContactValidationFailed,
		Details: map[string]interface{}{"fields": fields},
	})
}

// LogContactInFlightRejected records a duplicate submit while a dispatch is outstanding.
func (sl *SecurityLogger) LogContactInFlightRejected(ctx context.Context, sessionID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventContactInFlightRejected,
		SubjectType:  "session",
		SubjectValue: HashValue(sessionID),
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// MaskEmail masks an email for logging (e.g., "john@example.com" -> "j***@example.com")
func MaskEmail(email string) string {
	atIndex := strings.IndexByte(email, '@')
	switch {
	case len(email) < 3:
		return "***"
	case atIndex <= 1:
		return "***" + email[1:]
	}
	return email[:1] + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
