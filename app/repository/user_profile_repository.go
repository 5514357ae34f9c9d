package repository

import (
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

// userProfileRepository implements the UserProfileRepository interface.
// Profiles are looked up during authentication and entitlement checks, so
// they are never context-scoped.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository instance.
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(profile *models.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Create(profile).Error)
}

func (r *userProfileRepository) GetByID(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Preload("Contact").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) GetByEmail(email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("Contact").Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) GetByContactID(contactID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("Contact").Where("contact_id = ?", contactID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(profile *models.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(profile).Error)
}

func (r *userProfileRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserProfile{}, id).Error
}
