package catalogapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/talkincode/tinyshop/internal/domain"
	"github.com/talkincode/tinyshop/internal/store"
	"github.com/talkincode/tinyshop/internal/webserver"
)

// Route names, used for reverse routing
const (
	RouteGetAllProducts = "GetAllProducts"
	RouteGetProductById = "GetProductById"
	RouteCreateProduct  = "CreateProduct"
	RouteUpdateProduct  = "UpdateProduct"
	RouteDeleteProduct  = "DeleteProduct"
)

// registerProductRoutes registers the product CRUD endpoints under /api/Product
func registerProductRoutes(s *webserver.Server, open store.Factory) {
	pc := withProductContext(open)
	s.ApiGET("/Product", listProducts, pc).Name = RouteGetAllProducts
	s.ApiGET("/Product/:id", getProduct, pc).Name = RouteGetProductById
	s.ApiPOST("/Product", createProduct, pc).Name = RouteCreateProduct
	s.ApiPUT("/Product/:id", updateProduct, pc).Name = RouteUpdateProduct
	s.ApiDELETE("/Product/:id", deleteProduct, pc).Name = RouteDeleteProduct
}

// listProducts returns all products
// @Summary list all products
// @Tags Product
// @Success 200 {array} domain.Product
// @Router /api/Product [get]
func listProducts(c echo.Context) error {
	rows, err := GetProductContext(c).ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []*domain.Product{}
	}
	return c.JSON(http.StatusOK, rows)
}

// getProduct returns a product by id
// @Summary get a product
// @Tags Product
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404
// @Router /api/Product/{id} [get]
func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}
	p, err := GetProductContext(c).FindByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	} else if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// createProduct creates a product, the id is assigned by the store
// @Summary create a product
// @Tags Product
// @Param product body domain.Product true "Product"
// @Success 201 {object} domain.Product
// @Router /api/Product [post]
func createProduct(c echo.Context) error {
	var p domain.Product
	if err := bindProduct(c, &p); err != nil {
		return err
	}
	p.ID = 0

	db := GetProductContext(c)
	db.Add(&p)
	if err := db.SaveChanges(c.Request().Context()); err != nil {
		return err
	}

	zap.L().Info("catalogapi: product created", zap.Int64("id", p.ID))
	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(RouteGetProductById, p.ID))
	return c.JSON(http.StatusCreated, &p)
}

// updateProduct overwrites name, description, price and image of a product.
// The id in the body is ignored.
// @Summary update a product
// @Tags Product
// @Param id path int true "Product ID"
// @Param product body domain.Product true "Product"
// @Success 204
// @Failure 404
// @Router /api/Product/{id} [put]
func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var updated domain.Product
	if err := bindProduct(c, &updated); err != nil {
		return err
	}

	db := GetProductContext(c)
	existing, err := db.FindByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	} else if err != nil {
		return err
	}

	existing.Overwrite(&updated)
	if err := db.SaveChanges(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteProduct deletes a product
// @Summary delete a product
// @Tags Product
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404
// @Router /api/Product/{id} [delete]
func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	db := GetProductContext(c)
	existing, err := db.FindByID(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	} else if err != nil {
		return err
	}

	db.Remove(existing)
	if err := db.SaveChanges(c.Request().Context()); err != nil {
		return err
	}
	zap.L().Info("catalogapi: product deleted", zap.Int64("id", id))
	return c.NoContent(http.StatusNoContent)
}

// bindProduct decodes the JSON body; a body is required
func bindProduct(c echo.Context, p *domain.Product) error {
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, webserver.ErrorResponse{
			Code: "INVALID_REQUEST",
			Msg:  "Product body is required",
		})
	}
	if err := (&echo.DefaultBinder{}).BindBody(c, p); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
			return err
		}
		return echo.NewHTTPError(http.StatusBadRequest, webserver.ErrorResponse{
			Code:    "INVALID_REQUEST",
			Msg:     "Unable to parse product",
			Details: err.Error(),
		}).SetInternal(err)
	}
	return nil
}
