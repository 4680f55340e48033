package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/talkincode/tinyshop/internal/domain"
)

// defaultCatalog is the outdoor gear demo catalog
var defaultCatalog = []struct {
	Name        string
	Description string
	Price       string
}{
	{"Solar Powered Flashlight", "A fantastic product for outdoor enthusiasts", "19.99"},
	{"Hiking Poles", "Ideal for camping and hiking trips", "24.99"},
	{"Outdoor Rain Jacket", "This product will keep you warm and dry in all weathers", "49.99"},
	{"Survival Kit", "A must-have for any outdoor adventurer", "99.99"},
	{"Outdoor Backpack", "This backpack is perfect for carrying all your outdoor essentials", "39.99"},
	{"Camping Cookware", "This cookware set is ideal for cooking outdoors", "29.99"},
	{"Camping Stove", "This stove is perfect for cooking outdoors", "49.99"},
	{"Camping Lantern", "This lantern is perfect for lighting your campsite", "19.99"},
	{"Camping Tent", "This tent is perfect for camping trips", "99.99"},
}

// checkCatalog seeds the demo catalog when the product table is empty
func (a *Application) checkCatalog() {
	if err := SeedCatalog(context.Background(), a); err != nil {
		zap.L().Error("failed to initialize default catalog", zap.Error(err))
	}
}

// SeedCatalog inserts the demo catalog through a persistence context.
// A non-empty catalog is left untouched.
func SeedCatalog(ctx context.Context, p ProductContextProvider) error {
	pc := p.ProductContexts()()
	existing, err := pc.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i, item := range defaultCatalog {
		pc.Add(&domain.Product{
			Name:        domain.String(item.Name),
			Description: domain.String(item.Description),
			Price:       decimal.RequireFromString(item.Price),
			ImageUrl:    domain.String(fmt.Sprintf("product%d.png", i+1)),
		})
	}
	if err := pc.SaveChanges(ctx); err != nil {
		return err
	}
	zap.L().Info("initialized default catalog", zap.Int("products", len(defaultCatalog)))
	return nil
}
