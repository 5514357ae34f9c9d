package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/scope"
)

// contactRepository implements the ContactRepository interface. Contacts are
// both tenant- and organization-scoped; the two filters combine with AND
// when both slots are set.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) scoped(ctx context.Context) *gorm.DB {
	m := models.Contact{}
	return r.db.Scopes(scope.Tenant(ctx, m), scope.Organization(ctx, m))
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Create(contact).Error)
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.scoped(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByEmail looks up a contact by email. Email is only unique within a
// tenant, so callers without tenant context get the first match.
func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.scoped(ctx).Where("email = ?", email).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(contact).Error)
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.scoped(ctx).Delete(&models.Contact{}, id).Error
}

func (r *contactRepository) List(ctx context.Context, offset, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.scoped(ctx).
		Order("last_name, first_name").
		Offset(offset).Limit(limit).
		Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.scoped(ctx).Model(&models.Contact{}).Count(&count).Error
	return count, err
}

func (r *contactRepository) ListAll(offset, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("last_name, first_name").Offset(offset).Limit(limit).Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}
