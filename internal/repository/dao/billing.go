package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrArticleNotFound = errors.New("article not found")
)

type Article struct {
	ID          uint    `gorm:"primaryKey"`
	Designation string  `gorm:"not null"`
	Price       float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerAccount struct {
	ID        uint `gorm:"primaryKey"`
	ContactID uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

type Bill struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"not null;index"`
	Type       string    `gorm:"not null;default:standard"`
	Status     string    `gorm:"not null;default:building"`
	Date       time.Time `gorm:"not null"`
	Comment    string

	Lines []BillLine `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BillLine struct {
	ID          uint   `gorm:"primaryKey"`
	BillID      uint   `gorm:"not null;index"`
	ArticleID   uint   `gorm:"not null"`
	Designation string `gorm:"not null"`
	UnitPrice   float64
	Discount    float64 `gorm:"not null;default:0"`
}

type BillingDAO struct {
	db *gorm.DB
}

func NewBillingDAO(db *gorm.DB) *BillingDAO {
	return &BillingDAO{
		db: db,
	}
}

func (d *BillingDAO) FindArticleByID(ctx context.Context, id uint) (Article, error) {
	var article Article

	result := d.db.WithContext(ctx).First(&article, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Article{}, ErrArticleNotFound
		}

		return Article{}, result.Error
	}

	return article, nil
}

func (d *BillingDAO) GetOrCreateCustomer(ctx context.Context, contactID uint) (CustomerAccount, error) {
	var customer CustomerAccount

	result := d.db.WithContext(ctx).
		Where(CustomerAccount{ContactID: contactID}).
		FirstOrCreate(&customer)
	if result.Error != nil {
		return CustomerAccount{}, result.Error
	}

	return customer, nil
}

// FindOpenStandardBill returns the customer's most recent building bill of
// the standard type that already has at least one participant linked to it.
func (d *BillingDAO) FindOpenStandardBill(ctx context.Context, customerID uint) (Bill, error) {
	var bill Bill

	result := d.db.WithContext(ctx).
		Where("customer_id = ? AND type = ? AND status = ?", customerID, "standard", "building").
		Where("EXISTS (SELECT 1 FROM participants WHERE participants.bill_id = bills.id)").
		Order("date DESC").
		First(&bill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Bill{}, ErrBillNotFound
		}

		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) InsertBill(ctx context.Context, bill Bill) (Bill, error) {
	result := d.db.WithContext(ctx).Create(&bill)
	if result.Error != nil {
		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) FindBillByID(ctx context.Context, id uint) (Bill, error) {
	var bill Bill

	result := d.db.WithContext(ctx).Preload("Lines").First(&bill, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Bill{}, ErrBillNotFound
		}

		return Bill{}, result.Error
	}

	return bill, nil
}

func (d *BillingDAO) UpdateBillComment(ctx context.Context, billID uint, comment string) error {
	result := d.db.WithContext(ctx).
		Model(&Bill{}).
		Where("id = ?", billID).
		Update("comment", comment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}

	return nil
}

// DeleteLines wipes every line of the bill; the synchronization step rebuilds
// them all from the current participants.
func (d *BillingDAO) DeleteLines(ctx context.Context, billID uint) error {
	result := d.db.WithContext(ctx).Where("bill_id = ?", billID).Delete(&BillLine{})

	return result.Error
}

func (d *BillingDAO) InsertLine(ctx context.Context, line BillLine) (BillLine, error) {
	result := d.db.WithContext(ctx).Create(&line)
	if result.Error != nil {
		return BillLine{}, result.Error
	}

	return line, nil
}

func (d *BillingDAO) DeleteBill(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Bill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}

	return nil
}
