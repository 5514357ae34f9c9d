package repository

import (
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

// tenantAccountRepository implements the TenantAccountRepository interface.
// Tenant accounts are the isolation root, so none of these operations are
// themselves tenant-scoped.
type tenantAccountRepository struct {
	db *gorm.DB
}

// NewTenantAccountRepository creates a new tenant account repository instance.
func NewTenantAccountRepository(db *gorm.DB) TenantAccountRepository {
	return &tenantAccountRepository{db: db}
}

func (r *tenantAccountRepository) Create(tenant *models.TenantAccount) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Create(tenant).Error)
}

// CreateWithContact resolves the tenant/contact circular dependency: the
// tenant is created without a primary contact, the contact is created under
// the fresh tenant, then the tenant is linked to it. All three steps commit
// or roll back together.
func (r *tenantAccountRepository) CreateWithContact(tenant *models.TenantAccount, contact *models.Contact) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}

		contact.TenantID = &tenant.ID
		if err := contact.Validate(); err != nil {
			return err
		}
		if err := tx.Create(contact).Error; err != nil {
			return err
		}

		tenant.PrimaryContactID = &contact.ID
		if tenant.BillingContactID == nil {
			tenant.BillingContactID = &contact.ID
		}
		if tenant.BillingEmail == "" {
			tenant.BillingEmail = contact.Email
		}
		if err := tx.Model(tenant).Updates(map[string]interface{}{
			"primary_contact_id": tenant.PrimaryContactID,
			"billing_contact_id": tenant.BillingContactID,
			"billing_email":      tenant.BillingEmail,
		}).Error; err != nil {
			return err
		}

		link := models.TenantAccountContact{
			AccountID: tenant.ID,
			ContactID: contact.ID,
			Role:      models.TenantContactRolePrimary,
			IsActive:  true,
		}
		return tx.Create(&link).Error
	}))
}

func (r *tenantAccountRepository) GetByID(id uint) (*models.TenantAccount, error) {
	var tenant models.TenantAccount
	if err := r.db.First(&tenant, id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantAccountRepository) GetActiveByID(id uint) (*models.TenantAccount, error) {
	var tenant models.TenantAccount
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetActiveBySlug is the durable-store side of tenant resolution; the
// resolver's read-through cache sits in front of it.
func (r *tenantAccountRepository) GetActiveBySlug(slug string) (*models.TenantAccount, error) {
	var tenant models.TenantAccount
	err := r.db.Preload("PrimaryContact").
		Where("tenant_slug = ? AND is_active = ?", slug, true).
		First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantAccountRepository) Update(tenant *models.TenantAccount) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	return models.TranslateDBError(r.db.Save(tenant).Error)
}

func (r *tenantAccountRepository) Deactivate(id uint) error {
	return r.db.Model(&models.TenantAccount{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *tenantAccountRepository) Delete(id uint) error {
	return r.db.Delete(&models.TenantAccount{}, id).Error
}

func (r *tenantAccountRepository) List(offset, limit int) ([]models.TenantAccount, error) {
	var tenants []models.TenantAccount
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tenants).Error
	return tenants, err
}

func (r *tenantAccountRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TenantAccount{}).Count(&count).Error
	return count, err
}

// CountActiveMembers counts active member accounts for quota checks,
// deliberately ignoring any caller context.
func (r *tenantAccountRepository) CountActiveMembers(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.MemberAccount{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

func (r *tenantAccountRepository) CountClubs(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Club{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *tenantAccountRepository) CanAddMember(tenant *models.TenantAccount) (bool, error) {
	count, err := r.CountActiveMembers(tenant.ID)
	if err != nil {
		return false, err
	}
	return count < int64(tenant.MaxMemberAccounts), nil
}
