package cmd

import "time"

// Config carries the environment configuration for the application.
// RazorpayKeyID/RazorpayKeySecret may be empty; the payment gateway then
// reports itself unavailable and payment operations are rejected.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RazorpayKeyID     string
	RazorpayKeySecret string

	// SettlementDelay is how long a settled payment rests before the sweep
	// completes its payout legs. SettlementSweepSpec is the six-field cron
	// expression the sweep runs on.
	SettlementDelay     time.Duration
	SettlementSweepSpec string
}
