package twofactor

import (
	"fmt"

	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"
)

// Enrollment holds the artifacts of a TOTP enrollment: the shared secret to
// persist and a provisioning QR code PNG for the learner's authenticator app.
type Enrollment struct {
	Secret string
	URL    string
	QRPNG  []byte
}

// NewEnrollment generates a TOTP secret and provisioning QR code for a
// learner.
func NewEnrollment(issuer, learnerID string) (*Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: learnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("totp.Generate() > %w", err)
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode() > %w", err)
	}

	return &Enrollment{
		Secret: key.Secret(),
		URL:    key.URL(),
		QRPNG:  png,
	}, nil
}

// ValidateTOTP checks a 6-digit authenticator code against the secret.
func ValidateTOTP(code, secret string) bool {
	return totp.Validate(code, secret)
}
