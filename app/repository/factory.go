package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetTenantRepository returns the tenant account repository instance
func (f *Factory) GetTenantRepository() TenantAccountRepository {
	return f.GetRepositories().Tenant
}

// GetContactRepository returns the contact repository instance
func (f *Factory) GetContactRepository() ContactRepository {
	return f.GetRepositories().Contact
}

// GetUserProfileRepository returns the user profile repository instance
func (f *Factory) GetUserProfileRepository() UserProfileRepository {
	return f.GetRepositories().UserProfile
}

// GetMemberRepository returns the member account repository instance
func (f *Factory) GetMemberRepository() MemberAccountRepository {
	return f.GetRepositories().Member
}

// GetClubRepository returns the club repository instance
func (f *Factory) GetClubRepository() ClubRepository {
	return f.GetRepositories().Club
}

// GetClubStaffRepository returns the club staff repository instance
func (f *Factory) GetClubStaffRepository() ClubStaffRepository {
	return f.GetRepositories().ClubStaff
}

// GetClubMemberRepository returns the club member repository instance
func (f *Factory) GetClubMemberRepository() ClubMemberRepository {
	return f.GetRepositories().ClubMember
}

// GetClubAffiliationRepository returns the club affiliation repository instance
func (f *Factory) GetClubAffiliationRepository() ClubAffiliationRepository {
	return f.GetRepositories().ClubAffiliation
}

// GetPaymentRepository returns the payment history repository instance
func (f *Factory) GetPaymentRepository() PaymentHistoryRepository {
	return f.GetRepositories().Payment
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
