package attendance

import (
	"context"
	"time"
)

// Attestation carries what the client device reports at a check-in or
// check-out attempt. It is evidence, not a decision; the Verifier decides.
type Attestation struct {
	NetworkSSID    string `json:"networkSsid"`
	BiometricToken string `json:"biometricToken"`
}

// CapabilityReport is the verifier's decision for a single attempt. Reports
// are never cached: every attempt gets a fresh verification.
type CapabilityReport struct {
	WifiApproved      bool
	BiometricVerified bool
}

func (r CapabilityReport) Satisfied() bool {
	return r.WifiApproved && r.BiometricVerified
}

type Verifier interface {
	Verify(ctx context.Context, att Attestation) (CapabilityReport, error)
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
