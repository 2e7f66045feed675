package impl

import (
	"io"
	"log/slog"

	"mindset/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Mentor: &config.MentorConfig{
			ProgressIncrement: 14,
			CompleteThreshold: 98,
		},
		Referral: &config.ReferralConfig{
			CommissionAmount: 10,
			SignupBaseURL:    "https://example.com/signup",
		},
	}
}
