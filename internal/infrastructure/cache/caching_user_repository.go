// Package cache decora repositorios con caché de lectura en Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ruanwillians/indoorTv-core/internal/domain/entity"
	"github.com/ruanwillians/indoorTv-core/internal/domain/repository"
)

var _ repository.UserRepository = (*CachingUserRepository)(nil)

// CachingUserRepository decora un UserRepository con caché read-through de
// FindByID en Redis. Las escrituras pasan al repositorio interno y luego
// invalidan la entrada cacheada; el caché es best effort y nunca convierte
// un acierto de base en error.
type CachingUserRepository struct {
	inner repository.UserRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachingUserRepository construye el decorador. Con ttl <= 0 usa 5 minutos.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner repository.UserRepository) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingUserRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func userKey(id string) string { return "users:id:" + id }

// Create delega y deja el caché intacto (id nuevo, no hay entrada previa).
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) (*entity.UserSnapshot, error) {
	return c.inner.Create(ctx, user)
}

// CreateWithCompanyAccess delega al repositorio interno.
func (c *CachingUserRepository) CreateWithCompanyAccess(ctx context.Context, user *entity.User, company *entity.Company, role entity.Role) (*entity.UserSnapshot, error) {
	return c.inner.CreateWithCompanyAccess(ctx, user, company, role)
}

// FindAll no se cachea: los listados paginados cambian con cada escritura.
func (c *CachingUserRepository) FindAll(ctx context.Context, page, limit int) ([]entity.UserSnapshot, error) {
	return c.inner.FindAll(ctx, page, limit)
}

// FindByID consulta primero el caché y cae a la base en fallo o miss.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.UserSnapshot, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := userKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var snap entity.UserSnapshot
		if err := json.Unmarshal(b, &snap); err == nil {
			return &snap, nil
		}
		// Entrada corrupta: eliminar y seguir a la base
		_ = c.rdb.Del(ctx, key).Err()
	}

	snap, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(snap); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return snap, nil
}

// FindByEmail no se cachea: es el sondeo de unicidad y debe ver la base.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.UserSnapshot, error) {
	return c.inner.FindByEmail(ctx, email)
}

// Update delega y luego invalida la entrada del usuario.
func (c *CachingUserRepository) Update(ctx context.Context, id string, patch repository.UpdateUser) (*entity.UserSnapshot, error) {
	snap, err := c.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return snap, nil
}

// Remove delega y luego invalida la entrada del usuario.
func (c *CachingUserRepository) Remove(ctx context.Context, id string) error {
	if err := c.inner.Remove(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// UpdateCompanyAccess delega y luego invalida la entrada del usuario.
func (c *CachingUserRepository) UpdateCompanyAccess(ctx context.Context, user *entity.User, companyID string, role entity.Role) (*entity.UserSnapshot, error) {
	snap, err := c.inner.UpdateCompanyAccess(ctx, user, companyID, role)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, user.ID())
	return snap, nil
}

func (c *CachingUserRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, userKey(id)).Err() // best effort
}
