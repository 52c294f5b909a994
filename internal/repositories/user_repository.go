package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pitchplan_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error

	// ResetGenerations zeroes the usage counter and moves the reset date to
	// the start of the next billing period.
	ResetGenerations(userID string, nextReset time.Time) error

	// ConsumeGeneration increments the usage counter with the limit check in
	// the same statement. Returns false when the counter is already at the
	// limit, which makes concurrent over-consumption impossible.
	ConsumeGeneration(userID string) (bool, error)

	// UpdateStripeInfo stores the provider references. A non-empty
	// subscriptionID also flips the user to the pro plan with an unlimited
	// generation allowance.
	UpdateStripeInfo(userID, customerID, subscriptionID string) (*models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) ResetGenerations(userID string, nextReset time.Time) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"generations_used": 0,
			"reset_date":       nextReset,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ConsumeGeneration(userID string) (bool, error) {
	// Single conditional update; the WHERE guard and the increment are one
	// statement, so two concurrent requests at limit-1 cannot both land.
	result := r.db.Model(&models.User{}).
		Where("id = ? AND generations_used < generations_limit", userID).
		Update("generations_used", gorm.Expr("generations_used + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepositoryImpl) UpdateStripeInfo(userID, customerID, subscriptionID string) (*models.User, error) {
	updates := map[string]interface{}{
		"stripe_customer_id": customerID,
	}
	if subscriptionID != "" {
		updates["stripe_subscription_id"] = subscriptionID
		updates["plan_type"] = models.PlanTypePro
		updates["generations_limit"] = models.UnlimitedGenerations
	}

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.FindByID(userID)
}
