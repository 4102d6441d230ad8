package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultTemplateCacheTTL = 5 * time.Minute

// CachedPackageTemplateRepository is a read-through Redis cache in front of
// the package template repository. Every configuration load or recompute
// reads the whole template, so templates are by far the hottest read path.
//
// Cache failures never fail a read: on any Redis error the call falls through
// to the underlying store and the miss is logged.

type CachedPackageTemplateRepository struct {
	inner interfaces.IPackageTemplateRepository
	rdb   *redis.Client
	ttl   time.Duration
}

var _ interfaces.IPackageTemplateRepository = (*CachedPackageTemplateRepository)(nil)

func NewCachedPackageTemplateRepository(inner interfaces.IPackageTemplateRepository, rdb *redis.Client) *CachedPackageTemplateRepository {
	ttl := defaultTemplateCacheTTL
	if v := os.Getenv("TEMPLATE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	return &CachedPackageTemplateRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func (r *CachedPackageTemplateRepository) ListCities(ctx context.Context, packageID string) ([]entities.CityStop, error) {
	var out []entities.CityStop
	err := r.through(ctx, "pkg:"+packageID+":cities", &out, func() (any, error) {
		return r.inner.ListCities(ctx, packageID)
	})
	return out, err
}

func (r *CachedPackageTemplateRepository) ListSharedPricingRows(ctx context.Context, packageID string) ([]entities.PricingRow, error) {
	var out []entities.PricingRow
	err := r.through(ctx, "pkg:"+packageID+":shared_rows", &out, func() (any, error) {
		return r.inner.ListSharedPricingRows(ctx, packageID)
	})
	return out, err
}

func (r *CachedPackageTemplateRepository) ListPrivatePricingRows(ctx context.Context, packageID string) ([]entities.PrivatePricingRow, error) {
	var out []entities.PrivatePricingRow
	err := r.through(ctx, "pkg:"+packageID+":private_rows", &out, func() (any, error) {
		return r.inner.ListPrivatePricingRows(ctx, packageID)
	})
	return out, err
}

func (r *CachedPackageTemplateRepository) ListHotelOptions(ctx context.Context, cityIDs []string) ([]entities.HotelOption, error) {
	// Hotel options are cached per city so packages sharing a city share the
	// cache entries.
	var options []entities.HotelOption
	for _, cityID := range cityIDs {
		id := cityID
		var cityOptions []entities.HotelOption
		err := r.through(ctx, "city:"+id+":hotels", &cityOptions, func() (any, error) {
			return r.inner.ListHotelOptions(ctx, []string{id})
		})
		if err != nil {
			return nil, err
		}
		options = append(options, cityOptions...)
	}
	return options, nil
}

func (r *CachedPackageTemplateRepository) ListDayTemplates(ctx context.Context, packageID string) ([]entities.DayTemplate, error) {
	var out []entities.DayTemplate
	err := r.through(ctx, "pkg:"+packageID+":day_templates", &out, func() (any, error) {
		return r.inner.ListDayTemplates(ctx, packageID)
	})
	return out, err
}

func (r *CachedPackageTemplateRepository) GetItemPricingRule(ctx context.Context, packageID string) (entities.ItemPricingRule, error) {
	var out entities.ItemPricingRule
	err := r.through(ctx, "pkg:"+packageID+":item_rule", &out, func() (any, error) {
		return r.inner.GetItemPricingRule(ctx, packageID)
	})
	return out, err
}

// through fills dst from the cache when possible, otherwise loads from the
// underlying store and writes the entry back with the configured TTL.
func (r *CachedPackageTemplateRepository) through(ctx context.Context, key string, dst any, load func() (any, error)) error {
	if r.rdb != nil {
		raw, err := r.rdb.Get(ctx, key).Bytes()
		if err == nil {
			if err := json.Unmarshal(raw, dst); err == nil {
				return nil
			}
			log.Printf("[template-cache][repository] corrupt entry key=%s; reloading", key)
		} else if err != redis.Nil {
			log.Printf("[template-cache][repository] get failed key=%s err=%v", key, err)
		}
	}

	val, err := load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}

	if r.rdb != nil {
		if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			log.Printf("[template-cache][repository] set failed key=%s err=%v", key, err)
		}
	}
	return nil
}
