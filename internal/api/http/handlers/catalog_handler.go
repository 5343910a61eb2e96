package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nghetinhport/tos-bigdata-api/internal/api/dto"
	"github.com/nghetinhport/tos-bigdata-api/internal/report"
	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

const (
	defaultLimitPrimary = 50
	defaultLimit        = 20
)

// CatalogHandler exposes the six reference-data resources: customers, cargo
// categories, cargo types, handling methods, classes and ships.
type CatalogHandler struct {
	reports *report.Service
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(reports *report.Service) *CatalogHandler {
	return &CatalogHandler{reports: reports}
}

// ListCustomers handles GET /api/customers.
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimitPrimary)
	if err != nil {
		return err
	}
	customers, err := h.reports.ListCustomers(c.Context(), report.CustomerFilter{
		StartDate:       c.Query("startDate"),
		EndDate:         c.Query("endDate"),
		CustomerTaxCode: c.Query("customerTaxCode"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(customers, len(customers) == 0))
}

// GetCustomer handles GET /api/customers/:id.
func (h *CatalogHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.reports.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(customer))
}

// ListCargoCategories handles GET /api/cargoCategory.
func (h *CatalogHandler) ListCargoCategories(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimitPrimary)
	if err != nil {
		return err
	}
	cargoTypeID, err := intQuery(c, "cargoTypeId", 0)
	if err != nil {
		return err
	}
	categories, err := h.reports.ListCargoCategories(c.Context(), report.CargoCategoryFilter{
		CargoTypeID: cargoTypeID,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(categories, len(categories) == 0))
}

// GetCargoCategory handles GET /api/cargoCategory/:id. The id is numeric;
// anything else is a validation failure.
func (h *CatalogHandler) GetCargoCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidation("id must be an integer")
	}
	category, err := h.reports.GetCargoCategory(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(category))
}

// ListCargoTypes handles GET /api/cargoType.
func (h *CatalogHandler) ListCargoTypes(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimit)
	if err != nil {
		return err
	}
	types, err := h.reports.ListCargoTypes(c.Context(), report.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(types, len(types) == 0))
}

// GetCargoType handles GET /api/cargoType/:id. The id matches the numeric
// grouping key when it parses as an integer, the grouping code otherwise.
func (h *CatalogHandler) GetCargoType(c *fiber.Ctx) error {
	cargoType, err := h.reports.GetCargoType(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(cargoType))
}

// ListHandlingMethods handles GET /api/handlingMethodList.
func (h *CatalogHandler) ListHandlingMethods(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimit)
	if err != nil {
		return err
	}
	methods, err := h.reports.ListHandlingMethods(c.Context(), report.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(methods, len(methods) == 0))
}

// GetHandlingMethod handles GET /api/handlingMethodList/:id.
func (h *CatalogHandler) GetHandlingMethod(c *fiber.Ctx) error {
	method, err := h.reports.GetHandlingMethod(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(method))
}

// ListClasses handles GET /api/class.
func (h *CatalogHandler) ListClasses(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimit)
	if err != nil {
		return err
	}
	classes, err := h.reports.ListClasses(c.Context(), report.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(classes, len(classes) == 0))
}

// GetClass handles GET /api/class/:id.
func (h *CatalogHandler) GetClass(c *fiber.Ctx) error {
	class, err := h.reports.GetClass(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(class))
}

// ListShips handles GET /api/shipDetails.
func (h *CatalogHandler) ListShips(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c, defaultLimit)
	if err != nil {
		return err
	}
	ships, err := h.reports.ListShips(c.Context(), report.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(ships, len(ships) == 0))
}

// GetShip handles GET /api/shipDetails/:imo.
func (h *CatalogHandler) GetShip(c *fiber.Ctx) error {
	ship, err := h.reports.GetShipByIMO(c.Context(), c.Params("imo"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKSingle(ship))
}
