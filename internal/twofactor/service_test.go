package twofactor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_twofactor "github.com/prepdeck/prepdeck/internal/mocks/twofactor"
	"github.com/prepdeck/prepdeck/internal/testutil"
	"github.com/prepdeck/prepdeck/internal/twofactor"
)

func newService(codes *mock_twofactor.MockBackupCodeRepository, secrets *mock_twofactor.MockSecretRepository, now func() time.Time) *twofactor.Service {
	return twofactor.NewService(codes, secrets, "prepdeck-test", 10, nil, now)
}

func TestService_RegenerateCodes(t *testing.T) {
	ctrl := gomock.NewController(t)

	codes := mock_twofactor.NewMockBackupCodeRepository(ctrl)
	codes.EXPECT().ReplaceBatch(gomock.Any(), "learner-1", gomock.Len(10)).Return(nil)

	service := newService(codes, nil, nil)

	plaintext, err := service.RegenerateCodes(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Len(t, plaintext, 10)
}

func TestService_RegenerateCodes_PersistenceFailureReturnsNoCodes(t *testing.T) {
	ctrl := gomock.NewController(t)

	codes := mock_twofactor.NewMockBackupCodeRepository(ctrl)
	codes.EXPECT().ReplaceBatch(gomock.Any(), "learner-1", gomock.Any()).
		Return(errors.New("connection refused"))

	service := newService(codes, nil, nil)

	plaintext, err := service.RegenerateCodes(context.Background(), "learner-1")
	require.Error(t, err)
	assert.Nil(t, plaintext)
}

func TestService_VerifyAndConsume(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := testutil.NewClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	record := &twofactor.BackupCode{
		ID:        uuid.New(),
		LearnerID: "learner-1",
		CodeHash:  twofactor.HashCode("ABCD-2345"),
	}

	codes := mock_twofactor.NewMockBackupCodeRepository(ctrl)
	// Codes are case-insensitive for the user, so the lowercase candidate
	// must hash to the stored value.
	codes.EXPECT().FindUnusedByHash(gomock.Any(), "learner-1", record.CodeHash).Return(record, nil)
	codes.EXPECT().MarkUsed(gomock.Any(), record.ID, clock.Now()).Return(true, nil)

	service := newService(codes, nil, clock.Now)

	ok, err := service.VerifyAndConsume(context.Background(), "learner-1", " abcd-2345 ")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_VerifyAndConsume_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)

	codes := mock_twofactor.NewMockBackupCodeRepository(ctrl)
	codes.EXPECT().FindUnusedByHash(gomock.Any(), "learner-1", gomock.Any()).Return(nil, nil)

	service := newService(codes, nil, nil)

	ok, err := service.VerifyAndConsume(context.Background(), "learner-1", "WXYZ-9876")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_VerifyAndConsume_LosesConditionalUpdateRace(t *testing.T) {
	ctrl := gomock.NewController(t)

	record := &twofactor.BackupCode{
		ID:        uuid.New(),
		LearnerID: "learner-1",
		CodeHash:  twofactor.HashCode("ABCD-2345"),
	}

	// A concurrent request consumed the code between lookup and mark; the
	// conditional update reports no row touched and verification fails.
	codes := mock_twofactor.NewMockBackupCodeRepository(ctrl)
	codes.EXPECT().FindUnusedByHash(gomock.Any(), "learner-1", record.CodeHash).Return(record, nil)
	codes.EXPECT().MarkUsed(gomock.Any(), record.ID, gomock.Any()).Return(false, nil)

	service := newService(codes, nil, nil)

	ok, err := service.VerifyAndConsume(context.Background(), "learner-1", "ABCD-2345")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Enroll(t *testing.T) {
	ctrl := gomock.NewController(t)

	var saved string
	secrets := mock_twofactor.NewMockSecretRepository(ctrl)
	secrets.EXPECT().SaveSecret(gomock.Any(), "learner-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, secret string) error {
			saved = secret
			return nil
		})

	service := newService(nil, secrets, nil)

	enrollment, err := service.Enroll(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Equal(t, saved, enrollment.Secret)
	assert.NotEmpty(t, enrollment.QRPNG)
	assert.Contains(t, enrollment.URL, "prepdeck-test")
}

func TestService_VerifyTOTP_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "prepdeck-test", AccountName: "learner-1"})
	require.NoError(t, err)

	secrets := mock_twofactor.NewMockSecretRepository(ctrl)
	secrets.EXPECT().FindSecret(gomock.Any(), "learner-1").Return(key.Secret(), nil).Times(2)

	service := newService(nil, secrets, nil)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	ok, err := service.VerifyTOTP(context.Background(), "learner-1", code)
	require.NoError(t, err)
	assert.True(t, ok)

	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}
	ok, err = service.VerifyTOTP(context.Background(), "learner-1", wrong)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_VerifyTOTP_NotEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)

	secrets := mock_twofactor.NewMockSecretRepository(ctrl)
	secrets.EXPECT().FindSecret(gomock.Any(), "learner-1").Return("", twofactor.ErrNotEnrolled)

	service := newService(nil, secrets, nil)

	_, err := service.VerifyTOTP(context.Background(), "learner-1", "123456")
	assert.ErrorIs(t, err, twofactor.ErrNotEnrolled)
}
