package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

var (
	ErrBillNotFound    = dao.ErrBillNotFound
	ErrArticleNotFound = dao.ErrArticleNotFound
)

type BillingDAO interface {
	FindArticleByID(ctx context.Context, id uint) (dao.Article, error)
	GetOrCreateCustomer(ctx context.Context, contactID uint) (dao.CustomerAccount, error)
	FindOpenStandardBill(ctx context.Context, customerID uint) (dao.Bill, error)
	InsertBill(ctx context.Context, bill dao.Bill) (dao.Bill, error)
	FindBillByID(ctx context.Context, id uint) (dao.Bill, error)
	UpdateBillComment(ctx context.Context, billID uint, comment string) error
	DeleteLines(ctx context.Context, billID uint) error
	InsertLine(ctx context.Context, line dao.BillLine) (dao.BillLine, error)
	DeleteBill(ctx context.Context, id uint) error
}

// BillingRepository adapts the billing engine's contract: customer ledger
// entries, bill creation and line synchronization.
type BillingRepository struct {
	dao BillingDAO
}

func NewBillingRepository(dao BillingDAO) *BillingRepository {
	return &BillingRepository{
		dao: dao,
	}
}

func (r *BillingRepository) billDaoToDomain(b dao.Bill) domain.Bill {
	bill := domain.Bill{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Type:       domain.BillType(b.Type),
		Status:     domain.BillStatus(b.Status),
		Date:       b.Date,
		Comment:    b.Comment,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	for _, l := range b.Lines {
		bill.Lines = append(bill.Lines, domain.BillLine{
			ID:          l.ID,
			BillID:      l.BillID,
			ArticleID:   l.ArticleID,
			Designation: l.Designation,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
		})
	}

	return bill
}

func (r *BillingRepository) FindArticleByID(ctx context.Context, id uint) (domain.Article, error) {
	found, err := r.dao.FindArticleByID(ctx, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("r.dao.FindArticleByID -> %w", err)
	}

	return domain.Article{
		ID:          found.ID,
		Designation: found.Designation,
		Price:       found.Price,
	}, nil
}

func (r *BillingRepository) GetOrCreateCustomer(ctx context.Context, contactID uint) (domain.CustomerAccount, error) {
	customer, err := r.dao.GetOrCreateCustomer(ctx, contactID)
	if err != nil {
		return domain.CustomerAccount{}, fmt.Errorf("r.dao.GetOrCreateCustomer -> %w", err)
	}

	return domain.CustomerAccount{
		ID:        customer.ID,
		ContactID: customer.ContactID,
	}, nil
}

func (r *BillingRepository) FindOpenStandardBill(ctx context.Context, customerID uint) (domain.Bill, error) {
	found, err := r.dao.FindOpenStandardBill(ctx, customerID)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.FindOpenStandardBill -> %w", err)
	}

	return r.billDaoToDomain(found), nil
}

func (r *BillingRepository) CreateBill(ctx context.Context, bill domain.Bill) (domain.Bill, error) {
	created, err := r.dao.InsertBill(ctx, dao.Bill{
		CustomerID: bill.CustomerID,
		Type:       string(bill.Type),
		Status:     string(bill.Status),
		Date:       bill.Date,
		Comment:    bill.Comment,
	})
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.InsertBill -> %w", err)
	}

	return r.billDaoToDomain(created), nil
}

func (r *BillingRepository) FindBillByID(ctx context.Context, id uint) (domain.Bill, error) {
	found, err := r.dao.FindBillByID(ctx, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("r.dao.FindBillByID -> %w", err)
	}

	return r.billDaoToDomain(found), nil
}

func (r *BillingRepository) SaveBillComment(ctx context.Context, billID uint, comment string) error {
	if err := r.dao.UpdateBillComment(ctx, billID, comment); err != nil {
		return fmt.Errorf("r.dao.UpdateBillComment -> %w", err)
	}

	return nil
}

func (r *BillingRepository) DeleteBillLines(ctx context.Context, billID uint) error {
	if err := r.dao.DeleteLines(ctx, billID); err != nil {
		return fmt.Errorf("r.dao.DeleteLines -> %w", err)
	}

	return nil
}

func (r *BillingRepository) AddBillLine(ctx context.Context, line domain.BillLine) (domain.BillLine, error) {
	created, err := r.dao.InsertLine(ctx, dao.BillLine{
		BillID:      line.BillID,
		ArticleID:   line.ArticleID,
		Designation: line.Designation,
		UnitPrice:   line.UnitPrice,
		Discount:    line.Discount,
	})
	if err != nil {
		return domain.BillLine{}, fmt.Errorf("r.dao.InsertLine -> %w", err)
	}

	line.ID = created.ID
	return line, nil
}

// DeleteBill removes a building bill; posted bills are refused with the
// message from Bill.CanDelete.
func (r *BillingRepository) DeleteBill(ctx context.Context, id uint) error {
	bill, err := r.FindBillByID(ctx, id)
	if err != nil {
		return err
	}

	if reason := bill.CanDelete(); reason != "" {
		return domain.NewValidationError(reason)
	}

	if err = r.dao.DeleteBill(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteBill -> %w", err)
	}

	return nil
}
