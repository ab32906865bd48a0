// Package presence implements the capability checks gating attendance:
// whether the device sits on an approved WiFi network and whether its
// biometric attestation holds. Every check-in attempt is verified fresh
// against the stored network list.
package presence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/domain/attendance"
	"workforce/internal/platform/ident"
)

var (
	ErrInvalidSSID = errors.New("network ssid must not be empty")
	ErrNotFound    = errors.New("approved network not found")
)

type Network struct {
	ID        string    `json:"id"`
	SSID      string    `json:"ssid"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

// Verify checks the attestation against the current approved-network list.
// The result is computed per call, never cached.
func (s *Service) Verify(ctx context.Context, att attendance.Attestation) (attendance.CapabilityReport, error) {
	var report attendance.CapabilityReport

	ssid := strings.TrimSpace(att.NetworkSSID)
	if ssid != "" {
		var exists bool
		err := s.DB.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM approved_networks WHERE lower(ssid) = lower($1))",
			ssid).Scan(&exists)
		if err != nil {
			return report, err
		}
		report.WifiApproved = exists
	}

	// The biometric provider is external. Its attestation token is opaque
	// here; presence only requires that the device produced one.
	report.BiometricVerified = strings.TrimSpace(att.BiometricToken) != ""
	return report, nil
}

func (s *Service) AddNetwork(ctx context.Context, ssid, createdBy string) (Network, error) {
	ssid = strings.TrimSpace(ssid)
	if ssid == "" {
		return Network{}, ErrInvalidSSID
	}
	n := Network{
		ID:        ident.New(ident.PrefixNetwork),
		SSID:      ssid,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO approved_networks (id, ssid, created_by, created_at)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (ssid) DO NOTHING
  `, n.ID, n.SSID, n.CreatedBy, n.CreatedAt)
	if err != nil {
		return Network{}, err
	}
	return n, nil
}

func (s *Service) RemoveNetwork(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM approved_networks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListNetworks(ctx context.Context) ([]Network, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT id, ssid, created_by, created_at FROM approved_networks ORDER BY ssid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Network
	for rows.Next() {
		var n Network
		if err := rows.Scan(&n.ID, &n.SSID, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

var _ attendance.Verifier = (*Service)(nil)
