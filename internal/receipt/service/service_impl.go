package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/ketukakahala/rentalops/internal/clock"
	companydomain "github.com/ketukakahala/rentalops/internal/company/domain"
	"github.com/ketukakahala/rentalops/internal/providers/pdf"
	receiptdomain "github.com/ketukakahala/rentalops/internal/receipt/domain"
	"github.com/ketukakahala/rentalops/pkg/db"
	"github.com/ketukakahala/rentalops/pkg/telemetry"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	numberGenAttempts = 5
	dateLayout        = "2006-01-02"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	clock   clock.Clock
	repo    receiptdomain.Repository
	company companydomain.Service
	pdf     pdf.Provider
	metrics *telemetry.Metrics
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    receiptdomain.Repository
	Company companydomain.Service
	PDF     pdf.Provider
	Metrics *telemetry.Metrics `optional:"true"`
}

func NewService(p ServiceParam) receiptdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("receipt.service"),

		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		company: p.Company,
		pdf:     p.PDF,
		metrics: p.Metrics,
	}
}

func (s *Service) Issue(ctx context.Context, req receiptdomain.IssueReceiptRequest) (receiptdomain.IssueReceiptResponse, error) {
	transactionID, err := snowflake.ParseString(strings.TrimSpace(req.TransactionID))
	if err != nil || transactionID == 0 {
		return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidTransaction
	}
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidCustomer
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidCustomer
	}
	if req.Amount.IsZero() || req.Amount.IsNegative() {
		return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidAmount
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidPaymentMethod
	}

	var invoiceID *snowflake.ID
	if trimmed := strings.TrimSpace(req.InvoiceID); trimmed != "" {
		id, err := snowflake.ParseString(trimmed)
		if err != nil {
			return receiptdomain.IssueReceiptResponse{}, receiptdomain.ErrInvalidID
		}
		invoiceID = &id
	}

	receipt := receiptdomain.Receipt{
		ID:            s.genID.Generate(),
		InvoiceID:     invoiceID,
		TransactionID: transactionID,
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		Amount:        req.Amount.Round(2),
		PaymentMethod: req.PaymentMethod,
		IssueDate:     clock.Today(s.clock),
		Notes:         req.Notes,
		CreatedAt:     s.clock.Now(),
	}

	// Retry on a unique-index violation: the number pre-check cannot see
	// a concurrent candidate that has not committed yet.
	if err := retryOnDuplicate(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			number, err := s.nextReceiptNumber(ctx, tx)
			if err != nil {
				return err
			}
			receipt.ReceiptNumber = number
			return s.repo.Insert(ctx, tx, &receipt)
		})
	}); err != nil {
		return receiptdomain.IssueReceiptResponse{}, err
	}

	s.metrics.ObserveReceiptIssued()
	s.log.Info("receipt issued",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("receipt_number", receipt.ReceiptNumber),
	)

	return receiptdomain.IssueReceiptResponse{
		ReceiptID:     receipt.ID.String(),
		ReceiptNumber: receipt.ReceiptNumber,
		Amount:        receipt.Amount,
		IssueDate:     receipt.IssueDate,
	}, nil
}

func (s *Service) List(ctx context.Context, req receiptdomain.ListReceiptRequest) ([]receiptdomain.Receipt, error) {
	return s.repo.List(ctx, s.db, req)
}

func (s *Service) GetByID(ctx context.Context, id string) (receiptdomain.ReceiptDetail, error) {
	receiptID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return receiptdomain.ReceiptDetail{}, receiptdomain.ErrInvalidID
	}

	detail, err := s.repo.FindDetail(ctx, s.db, receiptID)
	if err != nil {
		return receiptdomain.ReceiptDetail{}, err
	}
	if detail == nil {
		return receiptdomain.ReceiptDetail{}, receiptdomain.ErrReceiptNotFound
	}
	return *detail, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]receiptdomain.Receipt, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(customerID))
	if err != nil {
		return nil, receiptdomain.ErrInvalidCustomer
	}
	return s.repo.ListByCustomer(ctx, s.db, id)
}

func (s *Service) RenderPDF(ctx context.Context, id string) (receiptdomain.ReceiptPDF, error) {
	detail, err := s.GetByID(ctx, id)
	if err != nil {
		return receiptdomain.ReceiptPDF{}, err
	}

	data := pdf.ReceiptData{
		ReceiptNumber: detail.ReceiptNumber,
		IssueDate:     detail.IssueDate.Format(dateLayout),
		CustomerName:  detail.CustomerName,
		InvoiceNumber: detail.InvoiceNumber,
		PaymentMethod: detail.PaymentMethod,
		PaymentDate:   detail.PaymentDate.Format(dateLayout),
		AmountPaid:    fmt.Sprintf("NAD %.2f", detail.Amount.InexactFloat64()),
		Notes:         detail.Notes,
	}

	company, err := s.company.Get(ctx)
	if err != nil && !errors.Is(err, companydomain.ErrCompanyNotFound) {
		return receiptdomain.ReceiptPDF{}, err
	}
	data.CompanyName = company.Name
	data.CompanyAddress = company.Address
	data.CompanyPhone = company.Phone
	data.CompanyEmail = company.Email

	reader, err := s.pdf.GenerateReceipt(ctx, data)
	if err != nil {
		return receiptdomain.ReceiptPDF{}, err
	}
	document, err := io.ReadAll(reader)
	if err != nil {
		return receiptdomain.ReceiptPDF{}, err
	}
	return receiptdomain.ReceiptPDF{
		ReceiptNumber: detail.ReceiptNumber,
		Document:      document,
	}, nil
}

func retryOnDuplicate(fn func() error) error {
	var err error
	for range numberGenAttempts {
		err = fn()
		if err == nil || !db.IsDuplicateKeyErr(err) {
			return err
		}
	}
	return err
}

func (s *Service) nextReceiptNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	yearMonth := s.clock.Now().Format("200601")
	for range numberGenAttempts {
		candidate := fmt.Sprintf("REC-%s-%04d", yearMonth, rand.IntN(10000))
		existing, err := s.repo.FindByNumber(ctx, tx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("receipt number space exhausted for %s", yearMonth)
}
