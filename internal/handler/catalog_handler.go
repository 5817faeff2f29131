package handler

import (
	"comanda-pos/internal/model"
	"comanda-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler is the admin CRUD for categories, products, composites and portions
type CatalogHandler struct {
	catalog *service.Catalog
}

func NewCatalogHandler(catalog *service.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ---- categories ----

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Categories())
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	category, err := h.catalog.CreateCategory(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var req service.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	category, err := h.catalog.UpdateCategory(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// ---- products ----

// GetProducts filters by ?category= or ?type=whole|fractional
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.catalog.ProductsByCategory(category))
	}
	switch model.ProductType(c.Query("type")) {
	case model.ProductWhole:
		return c.JSON(h.catalog.WholeProducts())
	case model.ProductFractional:
		return c.JSON(h.catalog.FractionalProducts())
	}
	return c.JSON(h.catalog.Products())
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.Product(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.catalog.CreateProduct(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product, err := h.catalog.UpdateProduct(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// ---- composites ----

func (h *CatalogHandler) GetComposites(c *fiber.Ctx) error {
	if t := model.CompositeType(c.Query("type")); t != "" {
		return c.JSON(h.catalog.ByType(t))
	}
	return c.JSON(h.catalog.Composites())
}

func (h *CatalogHandler) GetComposite(c *fiber.Ctx) error {
	composite, err := h.catalog.Composite(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(composite)
}

func (h *CatalogHandler) CreateComposite(c *fiber.Ctx) error {
	var req service.CreateCompositeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	composite, err := h.catalog.CreateComposite(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Composite created", "data": composite})
}

func (h *CatalogHandler) UpdateComposite(c *fiber.Ctx) error {
	var req service.UpdateCompositeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	composite, err := h.catalog.UpdateComposite(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Composite updated", "data": composite})
}

func (h *CatalogHandler) DeleteComposite(c *fiber.Ctx) error {
	if err := h.catalog.DeleteComposite(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Composite deleted"})
}

// ---- portions ----

func (h *CatalogHandler) GetPortions(c *fiber.Ctx) error {
	if c.QueryBool("active") {
		return c.JSON(h.catalog.ActivePortions())
	}
	return c.JSON(h.catalog.Portions())
}

func (h *CatalogHandler) CreatePortion(c *fiber.Ctx) error {
	var req service.CreatePortionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	portion, err := h.catalog.CreatePortion(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Portion created", "data": portion})
}

func (h *CatalogHandler) UpdatePortion(c *fiber.Ctx) error {
	var req service.UpdatePortionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	portion, err := h.catalog.UpdatePortion(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Portion updated", "data": portion})
}

func (h *CatalogHandler) DeletePortion(c *fiber.Ctx) error {
	if err := h.catalog.DeletePortion(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Portion deleted"})
}
