package twofactor

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/metrics"
)

// Service orchestrates enrollment, TOTP verification, and the backup-code
// fallback.
type Service struct {
	codes    BackupCodeRepository
	secrets  SecretRepository
	issuer   string
	batch    int
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService creates a Service. batch is the number of backup codes per
// generated set; zero means DefaultBatchSize. now may be nil, in which case
// time.Now is used.
func NewService(codes BackupCodeRepository, secrets SecretRepository, issuer string, batch int, recorder *metrics.Recorder, now func() time.Time) *Service {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		codes:    codes,
		secrets:  secrets,
		issuer:   issuer,
		batch:    batch,
		recorder: recorder,
		now:      now,
	}
}

// Enroll generates a TOTP secret for the learner, persists it, and returns
// the enrollment artifacts for one-time display.
func (s *Service) Enroll(ctx context.Context, learnerID string) (*Enrollment, error) {
	enrollment, err := NewEnrollment(s.issuer, learnerID)
	if err != nil {
		return nil, err
	}
	if err := s.secrets.SaveSecret(ctx, learnerID, enrollment.Secret); err != nil {
		return nil, fmt.Errorf("secrets.SaveSecret(%s) > %w", learnerID, err)
	}
	return enrollment, nil
}

// VerifyTOTP checks an authenticator code for the learner.
func (s *Service) VerifyTOTP(ctx context.Context, learnerID, code string) (bool, error) {
	secret, err := s.secrets.FindSecret(ctx, learnerID)
	if err != nil {
		return false, fmt.Errorf("secrets.FindSecret(%s) > %w", learnerID, err)
	}
	return ValidateTOTP(code, secret), nil
}

// RegenerateCodes issues a fresh batch of backup codes for the learner,
// invalidating any unused codes from earlier batches. The plaintext codes
// are returned only when the whole batch was persisted; on any error the
// caller must not display codes to the user.
func (s *Service) RegenerateCodes(ctx context.Context, learnerID string) ([]string, error) {
	plaintext, err := GenerateCodes(s.batch)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, len(plaintext))
	for i, code := range plaintext {
		hashes[i] = HashCode(code)
	}

	if err := s.codes.ReplaceBatch(ctx, learnerID, hashes); err != nil {
		return nil, fmt.Errorf("codes.ReplaceBatch(%s) > %w", learnerID, err)
	}

	if s.recorder != nil {
		s.recorder.Incr("twofactor.codes_generated")
	}
	return plaintext, nil
}

// VerifyAndConsume checks a backup code for the learner and, if valid, marks
// it used. The conditional mark at the persistence layer guarantees a code
// verifies at most once even under concurrent attempts.
func (s *Service) VerifyAndConsume(ctx context.Context, learnerID, candidate string) (bool, error) {
	hash := HashCode(candidate)

	record, err := s.codes.FindUnusedByHash(ctx, learnerID, hash)
	if err != nil {
		return false, fmt.Errorf("codes.FindUnusedByHash(%s) > %w", learnerID, err)
	}
	if record == nil {
		return false, nil
	}

	consumed, err := s.codes.MarkUsed(ctx, record.ID, s.now())
	if err != nil {
		return false, fmt.Errorf("codes.MarkUsed(%s) > %w", record.ID, err)
	}

	if consumed && s.recorder != nil {
		s.recorder.Incr("twofactor.codes_consumed")
	}
	return consumed, nil
}
