package statistics

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/internal/pkg/cache"
	"github.com/onespirit/onespirit/internal/pkg/database"
)

const (
	CacheKeyTenantStats = "tenant_stats_%d" // Format with tenant ID
	CacheExpiration     = 300 * time.Second
)

// TenantStats aggregates the per-tenant dashboard numbers.
type TenantStats struct {
	TenantID           uint    `json:"tenant_id"`
	MemberCount        int64   `json:"member_count"`
	MaxMembers         uint    `json:"max_members"`
	MemberUtilization  float64 `json:"member_utilization"`
	ClubCount          int64   `json:"club_count"`
	MaxClubs           uint    `json:"max_clubs"`
	TotalRevenue       float64 `json:"total_revenue"`
	PaymentCount       int64   `json:"payment_count"`
	SubscriptionStatus string  `json:"subscription_status"`
	ComputedAt         string  `json:"computed_at"`
}

func tenantStatsKey(tenantID uint) string {
	return fmt.Sprintf(CacheKeyTenantStats, tenantID)
}

// GetTenantStats returns the stats for a tenant, serving from cache when a
// fresh entry exists and recomputing otherwise.
func GetTenantStats(tenant *models.TenantAccount) (*TenantStats, error) {
	key := tenantStatsKey(tenant.ID)
	if cached, err := cache.Get(key); err == nil {
		var stats TenantStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		// Unreadable entry, recompute
		_ = cache.Delete(key)
	}

	stats, err := ComputeTenantStats(tenant)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := cache.Set(key, string(data), CacheExpiration); err != nil {
			log.Printf("Error caching tenant stats for %d: %v", tenant.ID, err)
		}
	}
	return stats, nil
}

// ComputeTenantStats reads the aggregates straight from the database. The
// counts deliberately ignore request context so the numbers always describe
// the whole tenant.
func ComputeTenantStats(tenant *models.TenantAccount) (*TenantStats, error) {
	db := database.GetDB()

	var memberCount int64
	err := db.Model(&models.MemberAccount{}).
		Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Count(&memberCount).Error
	if err != nil {
		log.Printf("Error counting members for tenant %d: %v", tenant.ID, err)
		return nil, err
	}

	var clubCount int64
	err = db.Model(&models.Club{}).
		Where("tenant_id = ?", tenant.ID).
		Count(&clubCount).Error
	if err != nil {
		log.Printf("Error counting clubs for tenant %d: %v", tenant.ID, err)
		return nil, err
	}

	var totalRevenue float64
	err = db.Model(&models.PaymentHistory{}).
		Where("account_type = ? AND account_id = ? AND payment_status = ?",
			models.PaymentAccountTenant, tenant.ID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&totalRevenue)
	if err != nil {
		log.Printf("Error summing revenue for tenant %d: %v", tenant.ID, err)
		return nil, err
	}

	var paymentCount int64
	err = db.Model(&models.PaymentHistory{}).
		Where("account_type = ? AND account_id = ? AND payment_status = ?",
			models.PaymentAccountTenant, tenant.ID, models.PaymentStatusCompleted).
		Count(&paymentCount).Error
	if err != nil {
		return nil, err
	}

	utilization := 0.0
	if tenant.MaxMemberAccounts > 0 {
		utilization = float64(memberCount) / float64(tenant.MaxMemberAccounts) * 100
	}

	return &TenantStats{
		TenantID:           tenant.ID,
		MemberCount:        memberCount,
		MaxMembers:         tenant.MaxMemberAccounts,
		MemberUtilization:  utilization,
		ClubCount:          clubCount,
		MaxClubs:           tenant.MaxClubs,
		TotalRevenue:       totalRevenue,
		PaymentCount:       paymentCount,
		SubscriptionStatus: tenant.SubscriptionStatus(),
		ComputedAt:         time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// InvalidateTenantStats drops the cached stats for a tenant. Call after any
// write that changes member, club or payment counts.
func InvalidateTenantStats(tenantID uint) {
	if err := cache.Delete(tenantStatsKey(tenantID)); err != nil {
		log.Printf("Error invalidating tenant stats for %d: %v", tenantID, err)
	}
}
