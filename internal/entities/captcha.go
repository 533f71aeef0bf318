package entities

import (
	"time"
)

type CaptchaChallenge struct {
	ID           string
	ExpectedText string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func (c CaptchaChallenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// IssuedCaptcha is what the caller hands to the browser.
type IssuedCaptcha struct {
	ID       string
	ImageURL string
}
