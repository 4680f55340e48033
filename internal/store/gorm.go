package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/talkincode/tinyshop/internal/domain"
)

// GormProductContext is the gorm implementation of ProductContext.
// It is not safe for concurrent use; open one per request.
type GormProductContext struct {
	db *gorm.DB
	unitOfWork
}

var _ ProductContext = (*GormProductContext)(nil)

// NewGormProductContext creates a persistence context over a shared gorm pool
func NewGormProductContext(db *gorm.DB) *GormProductContext {
	return &GormProductContext{db: db, unitOfWork: newUnitOfWork()}
}

// NewGormFactory returns a Factory opening gorm contexts on db
func NewGormFactory(db *gorm.DB) Factory {
	return func() ProductContext {
		return NewGormProductContext(db)
	}
}

func (c *GormProductContext) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "query product %d", id)
	}
	return c.track(&p), nil
}

func (c *GormProductContext) ListAll(ctx context.Context) ([]*domain.Product, error) {
	var rows []*domain.Product
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	for i, p := range rows {
		rows[i] = c.track(p)
	}
	return rows, nil
}

func (c *GormProductContext) Add(p *domain.Product) {
	c.stageAdd(p)
}

func (c *GormProductContext) Remove(p *domain.Product) {
	c.stageRemove(p)
}

func (c *GormProductContext) SaveChanges(ctx context.Context) error {
	ids := c.addedIDs()
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range c.added {
			p.ID = 0
			if err := tx.Create(p).Error; err != nil {
				return errors.Wrap(err, "insert product")
			}
		}
		for _, p := range c.modified() {
			err := tx.Model(&domain.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
				"name":        p.Name,
				"description": p.Description,
				"price":       p.Price,
				"image_url":   p.ImageUrl,
			}).Error
			if err != nil {
				return errors.Wrapf(err, "update product %d", p.ID)
			}
		}
		for _, id := range c.removed {
			if err := tx.Delete(&domain.Product{}, id).Error; err != nil {
				return errors.Wrapf(err, "delete product %d", id)
			}
		}
		return nil
	})
	if err != nil {
		c.restoreAddedIDs(ids)
		return err
	}
	c.accept()
	return nil
}
