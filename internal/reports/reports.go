package reports

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/finrecords/financial-records-api/internal/models"
)

// Service reads the three precomputed reporting views. Read-only by
// construction: raw SELECTs with bound parameters, ordering fixed by the
// API contract.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) TotalPayments(ctx context.Context) ([]models.ClientTotalPayments, error) {
	rows := make([]models.ClientTotalPayments, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT client_id, client_code, client_name, total_paid, total_transactions
		FROM client_total_payments
		ORDER BY total_paid DESC, client_name ASC
	`).Scan(&rows).Error
	return rows, err
}

func (s *Service) PendingInvoices(ctx context.Context) ([]models.PendingInvoice, error) {
	rows := make([]models.PendingInvoice, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT invoice_id, invoice_number, client_code, client_name, billing_period,
		       total_amount, paid_amount, pending_amount, status, description
		FROM pending_invoices
		ORDER BY pending_amount DESC, invoice_number ASC
	`).Scan(&rows).Error
	return rows, err
}

// TransactionsByPlatform lists transactions, optionally filtered by exact
// platform name. An empty or blank filter returns every row.
func (s *Service) TransactionsByPlatform(ctx context.Context, platform string) ([]models.PlatformTransaction, error) {
	platform = strings.TrimSpace(platform)

	query := `
		SELECT platform_name, transaction_reference, client_code, client_name,
		       invoice_number, transaction_date, amount, transaction_type, status
		FROM transactions_by_platform`
	args := make([]any, 0, 1)
	if platform != "" {
		query += ` WHERE platform_name = ?`
		args = append(args, platform)
	}
	query += ` ORDER BY transaction_date DESC`

	rows := make([]models.PlatformTransaction, 0)
	err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}
