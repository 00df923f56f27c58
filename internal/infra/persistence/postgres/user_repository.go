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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user with their role profile by unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("SellerProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user with their role profile by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("BuyerProfile").
		Preload("SellerProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its role profile, to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.BuyerProfile != nil && userM.BuyerProfile != nil {
		user.BuyerProfile.UserID = userM.BuyerProfile.UserID
	}
	if user.SellerProfile != nil && userM.SellerProfile != nil {
		user.SellerProfile.UserID = userM.SellerProfile.UserID
	}

	return nil
}

// Update modifies an existing user's account fields in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":  user.Name,
			"phone": user.Phone,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateBuyerProfile modifies an existing buyer profile.
func (repo *userRepository) UpdateBuyerProfile(ctx context.Context, profile *entity.BuyerProfile) error {
	lat, lng := fromCoordinate(profile.Location)

	result := repo.db.WithContext(ctx).
		Model(&model.BuyerProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"address":   profile.Address,
			"latitude":  lat,
			"longitude": lng,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update buyer profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateSellerProfile modifies an existing seller profile.
func (repo *userRepository) UpdateSellerProfile(ctx context.Context, profile *entity.SellerProfile) error {
	lat, lng := fromCoordinate(profile.Location)

	result := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"approved":            profile.Approved,
			"active":              profile.Active,
			"cylinders_available": profile.CylindersAvailable,
			"latitude":            lat,
			"longitude":           lng,
			"license_number":      profile.LicenseNumber,
			"licensee_name_addr":  profile.LicenseeNameAddr,
			"license_validity":    profile.LicenseValidity,
			"license_type":        profile.LicenseType,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrStockConflict
		}

		return errors.Wrap(result.Error, "failed to update seller profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindSellers retrieves seller accounts matching the filter, newest first.
func (repo *userRepository) FindSellers(ctx context.Context, filter repository.SellerListFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Preload("SellerProfile").
		Joins("JOIN seller_profiles ON seller_profiles.user_id = users.id").
		Where("users.role = ?", entity.RoleSeller.String())

	if filter.Approved != nil {
		query = query.Where("seller_profiles.approved = ?", *filter.Approved)
	}

	var userModels []*model.UserModel
	if err := query.Order("users.created_at DESC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sellers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindVisibleSellers retrieves approved, active sellers that have a pickup location set.
func (repo *userRepository) FindVisibleSellers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("SellerProfile").
		Joins("JOIN seller_profiles ON seller_profiles.user_id = users.id").
		Where("users.role = ?", entity.RoleSeller.String()).
		Where("seller_profiles.approved = ? AND seller_profiles.active = ?", true, true).
		Where("seller_profiles.latitude IS NOT NULL AND seller_profiles.longitude IS NOT NULL").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible sellers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// DecrementSellerStock atomically subtracts quantity from a seller's stock.
// The WHERE clause guards against oversell: the decrement only matches when the
// remaining stock covers the quantity, so concurrent purchases cannot drive the
// count negative. Zero rows affected means the stock changed underneath us.
func (repo *userRepository) DecrementSellerStock(ctx context.Context, sellerID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{}).
		Where("user_id = ? AND cylinders_available >= ?", sellerID, quantity).
		Update("cylinders_available", gorm.Expr("cylinders_available - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement seller stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

// CountByRole returns the number of accounts holding the given role.
func (repo *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

// SumSellerStock returns the total cylinders currently listed across all sellers.
func (repo *userRepository) SumSellerStock(ctx context.Context) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{}).
		Select("COALESCE(SUM(cylinders_available), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum seller stock")
	}

	return total, nil
}

// CountPendingSellers returns the number of sellers awaiting approval.
func (repo *userRepository) CountPendingSellers(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{}).
		Where("approved = ?", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending sellers")
	}

	return count, nil
}

// --- Mapper Functions ---

// toCoordinate builds a domain coordinate from nullable lat/lng columns.
func toCoordinate(lat, lng *float64) *entity.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}

	return &entity.Coordinate{Latitude: *lat, Longitude: *lng}
}

// fromCoordinate splits a domain coordinate into nullable lat/lng columns.
func fromCoordinate(coord *entity.Coordinate) (lat, lng *float64) {
	if coord == nil {
		return nil, nil
	}

	return &coord.Latitude, &coord.Longitude
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.BuyerProfile != nil {
		user.BuyerProfile = &entity.BuyerProfile{
			UserID:    data.BuyerProfile.UserID,
			Address:   data.BuyerProfile.Address,
			Location:  toCoordinate(data.BuyerProfile.Latitude, data.BuyerProfile.Longitude),
			UpdatedAt: data.BuyerProfile.UpdatedAt,
		}
	}

	if data.SellerProfile != nil {
		user.SellerProfile = &entity.SellerProfile{
			UserID:             data.SellerProfile.UserID,
			Approved:           data.SellerProfile.Approved,
			Active:             data.SellerProfile.Active,
			CylindersAvailable: data.SellerProfile.CylindersAvailable,
			Location:           toCoordinate(data.SellerProfile.Latitude, data.SellerProfile.Longitude),
			LicenseNumber:      data.SellerProfile.LicenseNumber,
			LicenseeNameAddr:   data.SellerProfile.LicenseeNameAddr,
			LicenseValidity:    data.SellerProfile.LicenseValidity,
			LicenseType:        data.SellerProfile.LicenseType,
			UpdatedAt:          data.SellerProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
		Phone: data.Phone,
		Role:  data.Role.String(),
	}

	if data.BuyerProfile != nil {
		lat, lng := fromCoordinate(data.BuyerProfile.Location)
		userM.BuyerProfile = &model.BuyerProfileModel{
			UserID:    data.BuyerProfile.UserID,
			Address:   data.BuyerProfile.Address,
			Latitude:  lat,
			Longitude: lng,
		}
	}

	if data.SellerProfile != nil {
		lat, lng := fromCoordinate(data.SellerProfile.Location)
		userM.SellerProfile = &model.SellerProfileModel{
			UserID:             data.SellerProfile.UserID,
			Approved:           data.SellerProfile.Approved,
			Active:             data.SellerProfile.Active,
			CylindersAvailable: data.SellerProfile.CylindersAvailable,
			Latitude:           lat,
			Longitude:          lng,
			LicenseNumber:      data.SellerProfile.LicenseNumber,
			LicenseeNameAddr:   data.SellerProfile.LicenseeNameAddr,
			LicenseValidity:    data.SellerProfile.LicenseValidity,
			LicenseType:        data.SellerProfile.LicenseType,
		}
	}

	return userM
}
