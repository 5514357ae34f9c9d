// Package tenantresolver maps an incoming request to the tenant account it
// belongs to. Resolution tries the host subdomain first, then an explicit
// /tenant/{slug} path prefix, and finally the tenant selection stored in the
// session. Slug lookups go through a short-lived cache so the hot path does
// not hit the database on every request; missing slugs are cached too.
package tenantresolver

import (
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/onespirit/onespirit/app/models"
)

// CacheTTL bounds how stale a cached tenant lookup may become.
const CacheTTL = 300 * time.Second

// notFoundSentinel marks a slug that resolved to no active tenant, so
// repeated lookups for unknown slugs stay off the database as well.
const notFoundSentinel = "__tenant_not_found__"

// Host labels that never identify a tenant.
var reservedSubdomains = map[string]bool{
	"www":    true,
	"api":    true,
	"admin":  true,
	"static": true,
	"media":  true,
}

// Hosts without meaningful subdomains (local development).
var loopbackHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
}

// Store loads tenant accounts from the database. Both lookups must only
// return active tenants.
type Store interface {
	GetActiveBySlug(slug string) (*models.TenantAccount, error)
	GetActiveByID(id uint) (*models.TenantAccount, error)
}

// Resolver resolves requests to tenant accounts with read-through caching.
type Resolver struct {
	store Store
	cache Cache
}

func New(store Store, cache Cache) *Resolver {
	return &Resolver{store: store, cache: cache}
}

// SlugCacheKey returns the cache key for a tenant slug lookup.
func SlugCacheKey(slug string) string {
	return "tenant_slug_" + slug
}

// Result carries the outcome of a full resolution pass.
type Result struct {
	Tenant *models.TenantAccount
	// Source names where the tenant came from: "subdomain", "path" or
	// "session". Empty when no tenant resolved.
	Source string
	// StaleSession is set when the session referenced a tenant that no
	// longer exists or is inactive; the caller should purge the session key.
	StaleSession bool
}

// Resolve runs the full precedence chain. sessionTenantID is the raw value of
// the session tenant selection, empty when absent.
func (r *Resolver) Resolve(host, path, sessionTenantID string) Result {
	if tenant := r.FromHost(host); tenant != nil {
		return Result{Tenant: tenant, Source: "subdomain"}
	}
	if tenant := r.FromPath(path); tenant != nil {
		return Result{Tenant: tenant, Source: "path"}
	}
	if sessionTenantID != "" {
		id, err := strconv.ParseUint(sessionTenantID, 10, 64)
		if err != nil {
			return Result{StaleSession: true}
		}
		tenant, err := r.store.GetActiveByID(uint(id))
		if err != nil || tenant == nil {
			return Result{StaleSession: true}
		}
		return Result{Tenant: tenant, Source: "session"}
	}
	return Result{}
}

// FromHost extracts a candidate slug from the request host and resolves it.
// Returns nil for loopback hosts, bare domains and reserved subdomains.
func (r *Resolver) FromHost(host string) *models.TenantAccount {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	if loopbackHosts[host] {
		return nil
	}

	parts := strings.Split(host, ".")
	// A subdomain needs at least label.domain.tld
	if len(parts) < 3 {
		return nil
	}
	slug := parts[0]
	if slug == "" || reservedSubdomains[slug] {
		return nil
	}
	return r.BySlug(slug)
}

// FromPath resolves a /tenant/{slug} path prefix.
func (r *Resolver) FromPath(path string) *models.TenantAccount {
	const prefix = "/tenant/"
	if !strings.HasPrefix(path, prefix) {
		return nil
	}
	rest := strings.TrimPrefix(path, prefix)
	slug := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		slug = rest[:i]
	}
	if slug == "" {
		return nil
	}
	return r.BySlug(slug)
}

// BySlug resolves a tenant slug through the cache, falling back to the store
// and writing the result (including a not-found marker) back with CacheTTL.
func (r *Resolver) BySlug(slug string) *models.TenantAccount {
	key := SlugCacheKey(slug)
	if cached, ok := r.cache.Get(key); ok {
		if cached == notFoundSentinel {
			return nil
		}
		var tenant models.TenantAccount
		if err := json.Unmarshal([]byte(cached), &tenant); err == nil {
			return &tenant
		}
		// Unreadable cache entry, fall through to the store.
		r.cache.Delete(key)
	}

	tenant, err := r.store.GetActiveBySlug(slug)
	if err != nil || tenant == nil {
		r.cache.Set(key, notFoundSentinel, CacheTTL)
		return nil
	}

	if data, err := json.Marshal(tenant); err == nil {
		r.cache.Set(key, string(data), CacheTTL)
	}
	return tenant
}

// ByID loads an active tenant directly, bypassing the slug cache. Used for
// session-stored tenant selections, which carry the ID rather than the slug.
func (r *Resolver) ByID(id uint) *models.TenantAccount {
	tenant, err := r.store.GetActiveByID(id)
	if err != nil {
		return nil
	}
	return tenant
}

// InvalidateSlug drops the cached lookup for a slug. Call after tenant
// updates so slug, status or quota changes become visible immediately.
func (r *Resolver) InvalidateSlug(slug string) {
	r.cache.Delete(SlugCacheKey(slug))
}
