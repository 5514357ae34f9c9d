package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

// Scoped methods take a context and honor the tenant/organization/actor
// slots set by the middleware chain. The ...All variants bypass all context
// filtering; they exist for administrative code paths and for quota and
// validation checks that must never be influenced by caller context.

// TenantAccountRepository defines tenant account database operations.
type TenantAccountRepository interface {
	Create(tenant *models.TenantAccount) error
	// CreateWithContact runs the two-phase create-then-link protocol in one
	// transaction: tenant first, then its primary contact, then the link.
	CreateWithContact(tenant *models.TenantAccount, contact *models.Contact) error
	GetByID(id uint) (*models.TenantAccount, error)
	GetActiveByID(id uint) (*models.TenantAccount, error)
	GetActiveBySlug(slug string) (*models.TenantAccount, error)
	Update(tenant *models.TenantAccount) error
	Deactivate(id uint) error
	Delete(id uint) error
	List(offset, limit int) ([]models.TenantAccount, error)
	Count() (int64, error)
	CountActiveMembers(tenantID uint) (int64, error)
	CountClubs(tenantID uint) (int64, error)
	CanAddMember(tenant *models.TenantAccount) (bool, error)
}

// ContactRepository defines contact database operations.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	GetByEmail(ctx context.Context, email string) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.Contact, error)
	Count(ctx context.Context) (int64, error)
	ListAll(offset, limit int) ([]models.Contact, error)
	CountAll() (int64, error)
}

// UserProfileRepository defines login profile database operations.
type UserProfileRepository interface {
	Create(profile *models.UserProfile) error
	GetByID(id uint) (*models.UserProfile, error)
	GetByEmail(email string) (*models.UserProfile, error)
	GetByContactID(contactID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
	Delete(id uint) error
}

// MemberAccountRepository defines member account database operations.
type MemberAccountRepository interface {
	Create(ctx context.Context, member *models.MemberAccount) error
	GetByID(ctx context.Context, id uint) (*models.MemberAccount, error)
	GetByMembershipNumber(ctx context.Context, number string) (*models.MemberAccount, error)
	GetByContactID(ctx context.Context, contactID uint) (*models.MemberAccount, error)
	Update(ctx context.Context, member *models.MemberAccount) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.MemberAccount, error)
	ListByStatus(ctx context.Context, status string) ([]models.MemberAccount, error)
	ListByType(ctx context.Context, membershipType string) ([]models.MemberAccount, error)
	ListExpiringSoon(ctx context.Context, days int) ([]models.MemberAccount, error)
	Count(ctx context.Context) (int64, error)
	ListAll(offset, limit int) ([]models.MemberAccount, error)
	CountAll() (int64, error)
}

// ClubRepository defines club database operations.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	GetBySlug(ctx context.Context, slug string) (*models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.Club, error)
	Count(ctx context.Context) (int64, error)
	ListAll(offset, limit int) ([]models.Club, error)
	CountAll() (int64, error)
}

// ClubStaffRepository defines staff assignment database operations.
type ClubStaffRepository interface {
	Create(ctx context.Context, staff *models.ClubStaff) error
	GetByID(ctx context.Context, id uint) (*models.ClubStaff, error)
	Update(ctx context.Context, staff *models.ClubStaff) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.ClubStaff, error)
	ListByClub(ctx context.Context, clubID uint) ([]models.ClubStaff, error)
	ListActiveByContact(contactID uint) ([]models.ClubStaff, error)
	Count(ctx context.Context) (int64, error)
	ListAll(offset, limit int) ([]models.ClubStaff, error)
}

// ClubMemberRepository defines club membership database operations.
type ClubMemberRepository interface {
	Create(ctx context.Context, membership *models.ClubMember) error
	GetByID(ctx context.Context, id uint) (*models.ClubMember, error)
	Update(ctx context.Context, membership *models.ClubMember) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.ClubMember, error)
	ListByClub(ctx context.Context, clubID uint) ([]models.ClubMember, error)
	Count(ctx context.Context) (int64, error)
	ListAll(offset, limit int) ([]models.ClubMember, error)
}

// ClubAffiliationRepository defines club affiliation database operations.
type ClubAffiliationRepository interface {
	Create(ctx context.Context, affiliation *models.ClubAffiliation) error
	GetByID(ctx context.Context, id uint) (*models.ClubAffiliation, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.ClubAffiliation, error)
}

// PaymentAccount is the resolved side of a payment's tagged account
// reference: exactly one of Tenant or Member is non-nil.
type PaymentAccount struct {
	Tenant *models.TenantAccount
	Member *models.MemberAccount
}

// PaymentHistoryRepository defines payment record database operations.
// ResolveAccount stays unscoped like the quota checks; everything else
// honors the context tenant.
type PaymentHistoryRepository interface {
	Create(ctx context.Context, payment *models.PaymentHistory) error
	GetByID(ctx context.Context, id uint) (*models.PaymentHistory, error)
	Update(ctx context.Context, payment *models.PaymentHistory) error
	Delete(ctx context.Context, id uint) error
	ListForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint, offset, limit int) ([]models.PaymentHistory, error)
	TotalCompletedForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint) (float64, error)
	CountCompletedForAccount(ctx context.Context, accountType models.PaymentAccountType, accountID uint) (int64, error)
	ResolveAccount(payment *models.PaymentHistory) (*PaymentAccount, error)
}

// Repositories holds all repository instances.
type Repositories struct {
	Tenant          TenantAccountRepository
	Contact         ContactRepository
	UserProfile     UserProfileRepository
	Member          MemberAccountRepository
	Club            ClubRepository
	ClubStaff       ClubStaffRepository
	ClubMember      ClubMemberRepository
	ClubAffiliation ClubAffiliationRepository
	Payment         PaymentHistoryRepository
}

// NewRepositories creates a new instance of all repositories.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tenant:          NewTenantAccountRepository(db),
		Contact:         NewContactRepository(db),
		UserProfile:     NewUserProfileRepository(db),
		Member:          NewMemberAccountRepository(db),
		Club:            NewClubRepository(db),
		ClubStaff:       NewClubStaffRepository(db),
		ClubMember:      NewClubMemberRepository(db),
		ClubAffiliation: NewClubAffiliationRepository(db),
		Payment:         NewPaymentHistoryRepository(db),
	}
}
