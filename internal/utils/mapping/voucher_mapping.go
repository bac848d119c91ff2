package mapping

import (
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher (without lines)
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:          d.VoucherID,
		VoucherNumber:      d.VoucherNumber,
		Sequence:           d.Sequence,
		VoucherType:        string(d.VoucherType),
		VoucherDate:        d.Date,
		ReferenceNumber:    d.ReferenceNumber,
		ChequeNumber:       d.ChequeNumber,
		ChequeDate:         d.ChequeDate,
		Narration:          d.Narration,
		Status:             string(d.Status),
		OriginalVoucherID:  d.OriginalVoucherID,
		ReversingVoucherID: d.ReversingVoucherID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainVoucher converts a model Voucher and its lines to a domain Voucher
func ToDomainVoucher(m models.Voucher, lines []models.VoucherLine) domain.Voucher {
	return domain.Voucher{
		VoucherID:          m.VoucherID,
		VoucherNumber:      m.VoucherNumber,
		Sequence:           m.Sequence,
		VoucherType:        domain.VoucherType(m.VoucherType),
		Date:               m.VoucherDate,
		ReferenceNumber:    m.ReferenceNumber,
		ChequeNumber:       m.ChequeNumber,
		ChequeDate:         m.ChequeDate,
		Narration:          m.Narration,
		Status:             domain.VoucherStatus(m.Status),
		OriginalVoucherID:  m.OriginalVoucherID,
		ReversingVoucherID: m.ReversingVoucherID,
		Lines:              ToDomainVoucherLineSlice(lines),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelVoucherLine converts a domain VoucherLine to a model VoucherLine
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:    d.LineID,
		VoucherID: d.VoucherID,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		Narration: d.Narration,
	}
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:    m.LineID,
		VoucherID: m.VoucherID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Narration: m.Narration,
	}
}

// ToDomainVoucherLineSlice converts a slice of model VoucherLines
func ToDomainVoucherLineSlice(ms []models.VoucherLine) []domain.VoucherLine {
	ds := make([]domain.VoucherLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucherLine(m)
	}
	return ds
}
