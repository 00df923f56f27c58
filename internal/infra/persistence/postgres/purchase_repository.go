// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	"oxylink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a new completed purchase record.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid buyer or seller reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid purchase quantity")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID

	return nil
}

// FindByBuyerID retrieves all purchases made by a buyer, most recent first.
func (repo *purchaseRepository) FindByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("purchase_date DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	return toPurchaseDomainList(purchaseModels), nil
}

// FindBySellerID retrieves purchases received by a seller, most recent first.
func (repo *purchaseRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Purchase, error) {
	query := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("purchase_date DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var purchaseModels []*model.PurchaseModel
	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by seller")
	}

	return toPurchaseDomainList(purchaseModels), nil
}

// Stats returns marketplace-wide purchase aggregates.
func (repo *purchaseRepository) Stats(ctx context.Context) (*repository.PurchaseStats, error) {
	var stats repository.PurchaseStats

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select(
			"COUNT(*) AS total_purchases",
			"COALESCE(SUM(quantity), 0) AS total_cylinders_sold",
			"COALESCE(SUM(total_amount), 0) AS total_revenue",
		).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate purchase stats")
	}

	return &stats, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:               data.ID,
		BuyerID:          data.BuyerID,
		SellerID:         data.SellerID,
		BuyerEmail:       data.BuyerEmail,
		BuyerName:        data.BuyerName,
		SellerName:       data.SellerName,
		SellerPhone:      data.SellerPhone,
		Quantity:         data.Quantity,
		PricePerCylinder: data.PricePerCylinder,
		TotalAmount:      data.TotalAmount,
		Status:           entity.PurchaseStatus(data.Status),
		PaymentCardLast4: data.PaymentCardLast4,
		BuyerAddress:     data.BuyerAddress,
		BuyerLocation:    toCoordinate(data.BuyerLatitude, data.BuyerLongitude),
		PurchaseDate:     data.PurchaseDate,
	}
}

func toPurchaseDomainList(models []*model.PurchaseModel) []*entity.Purchase {
	purchases := make([]*entity.Purchase, 0, len(models))
	for _, purchaseM := range models {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	lat, lng := fromCoordinate(data.BuyerLocation)

	return &model.PurchaseModel{
		ID:               data.ID,
		BuyerID:          data.BuyerID,
		SellerID:         data.SellerID,
		BuyerEmail:       data.BuyerEmail,
		BuyerName:        data.BuyerName,
		SellerName:       data.SellerName,
		SellerPhone:      data.SellerPhone,
		Quantity:         data.Quantity,
		PricePerCylinder: data.PricePerCylinder,
		TotalAmount:      data.TotalAmount,
		Status:           string(data.Status),
		PaymentCardLast4: data.PaymentCardLast4,
		BuyerAddress:     data.BuyerAddress,
		BuyerLatitude:    lat,
		BuyerLongitude:   lng,
		PurchaseDate:     data.PurchaseDate,
	}
}
