package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lacpaorocelyn/cpsunav/internal/cache"
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

type buildingRepository struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewBuildingPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.BuildingRepository {
	return &buildingRepository{
		db:    db,
		cache: cache.NewCacheHelper(redisClient, cache.BuildingCacheConfig.Prefix),
	}
}

func (r *buildingRepository) List(ctx context.Context) ([]*models.Building, error) {
	var buildings []*models.Building

	// Reference data; serve from cache when warm.
	if err := r.cache.Get(ctx, "list", &buildings); err == nil {
		return buildings, nil
	}

	if err := r.db.WithContext(ctx).Find(&buildings).Error; err != nil {
		return nil, handleDBError(err, "list buildings")
	}

	_ = r.cache.Set(ctx, "list", buildings, cache.BuildingCacheConfig.TTL)

	return buildings, nil
}

func (r *buildingRepository) GetByID(ctx context.Context, id uint) (*models.Building, error) {
	var building models.Building

	key := fmt.Sprintf("id:%d", id)
	if err := r.cache.Get(ctx, key, &building); err == nil {
		return &building, nil
	}

	if err := r.db.WithContext(ctx).First(&building, id).Error; err != nil {
		return nil, handleDBError(err, "get building by id")
	}

	_ = r.cache.Set(ctx, key, &building, cache.BuildingCacheConfig.TTL)

	return &building, nil
}

func (r *buildingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Building{}).Count(&count).Error; err != nil {
		return 0, handleDBError(err, "count buildings")
	}
	return count, nil
}

func (r *buildingRepository) CreateBatch(ctx context.Context, buildings []models.Building) error {
	if len(buildings) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&buildings).Error; err != nil {
		return handleDBError(err, "create buildings")
	}
	_ = r.cache.Delete(ctx, "list")
	return nil
}
