package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nghetinhport/tos-bigdata-api/internal/api/dto"
	"github.com/nghetinhport/tos-bigdata-api/internal/report"
)

// VolumesHandler exposes the three list-only sản lượng resources.
type VolumesHandler struct {
	reports *report.Service
}

// NewVolumesHandler constructs handler.
func NewVolumesHandler(reports *report.Service) *VolumesHandler {
	return &VolumesHandler{reports: reports}
}

// ListBulkGateVolumes handles GET /api/bulkGateVolumesCB.
func (h *VolumesHandler) ListBulkGateVolumes(c *fiber.Ctx) error {
	filter, err := parseVolumeFilter(c, false)
	if err != nil {
		return err
	}
	volumes, err := h.reports.ListBulkGateVolumes(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(volumes, len(volumes) == 0))
}

// ListBulkQuayVolumes handles GET /api/bulkQuayVolumesCB.
func (h *VolumesHandler) ListBulkQuayVolumes(c *fiber.Ctx) error {
	filter, err := parseVolumeFilter(c, true)
	if err != nil {
		return err
	}
	volumes, err := h.reports.ListBulkQuayVolumes(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(volumes, len(volumes) == 0))
}

// ListContainerQuayVolumes handles GET /api/contQuayVolumesCB.
func (h *VolumesHandler) ListContainerQuayVolumes(c *fiber.Ctx) error {
	filter, err := parseVolumeFilter(c, true)
	if err != nil {
		return err
	}
	volumes, err := h.reports.ListContainerQuayVolumes(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(volumes, len(volumes) == 0))
}

// parseVolumeFilter reads the shared volume query parameters. Only the quay
// resources accept shipId.
func parseVolumeFilter(c *fiber.Ctx, withShipID bool) (report.VolumeFilter, error) {
	page, limit, err := parsePagination(c, defaultLimit)
	if err != nil {
		return report.VolumeFilter{}, err
	}
	filter := report.VolumeFilter{
		StartDate:        c.Query("startDate"),
		EndDate:          c.Query("endDate"),
		CompanyID:        c.Query("companyId"),
		HandlingMethodID: c.Query("handlingMethodId"),
		Page:             page,
		Limit:            limit,
	}
	if withShipID {
		filter.ShipID = c.Query("shipId")
	}
	return filter, nil
}
