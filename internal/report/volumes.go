package report

import "context"

// BulkGateVolume is one sản lượng record for bulk cargo through the port
// gate and yards.
type BulkGateVolume struct {
	ReportDate       string  `json:"reportDate"`
	FinishDate       string  `json:"finishDate"`
	CompanyID        string  `json:"companyId"`
	CargoTypeID      string  `json:"cargoTypeId"`
	CargoCategoryID  string  `json:"cargoCategoryId"`
	HandlingMethodID string  `json:"handlingMethodId"`
	BulkOriginID     string  `json:"bulkOriginId"`
	BulkWeight       float64 `json:"bulkWeight"`
	CustomerCode     string  `json:"customerCode"`
}

// BulkQuayVolume is one sản lượng record for non-container cargo at the quay.
type BulkQuayVolume struct {
	ReportDate       string  `json:"reportDate"`
	FinishDate       string  `json:"finishDate"`
	CompanyID        string  `json:"companyId"`
	ShipID           string  `json:"shipId"`
	ShipAgentID      string  `json:"shipAgentId"`
	CargoTypeID      string  `json:"cargoTypeId"`
	CargoCategoryID  string  `json:"cargoCategoryId"`
	HandlingMethodID string  `json:"handlingMethodId"`
	ShipClassID      string  `json:"shipClassId"`
	BulkOriginID     string  `json:"bulkOriginId"`
	BulkWeight       float64 `json:"bulkWeight"`
}

// ContainerQuayVolume is one sản lượng record for containers at the quay.
type ContainerQuayVolume struct {
	ReportDate          string  `json:"reportDate"`
	CompanyID           string  `json:"companyId"`
	ShipID              string  `json:"shipId"`
	ClassID             string  `json:"classId"`
	OriginID            string  `json:"originId"`
	ContainerWeight     float64 `json:"containerWeight"`
	ContainerTEU        int     `json:"containerTEU"`
	HandlingMethodID    string  `json:"handlingMethodId"`
	FinishDate          string  `json:"finishDate"`
	ShipOperatorID      string  `json:"shipOperatorId"`
	ContainerOperatorID string  `json:"containerOperatorId"`
}

// VolumeFilter is the shared optional predicate set for the three volume
// listings. ShipID applies only to the quay resources; the gate handler
// never sets it.
type VolumeFilter struct {
	StartDate        string
	EndDate          string
	CompanyID        string
	ShipID           string
	HandlingMethodID string
	Page             int
	Limit            int
}

// Shared projection over the tally view joined to the cargo view. The tally
// view marks active rows with a NULL flag.
const volumeSelect = `
        SELECT
            t.shiftDate, t.tallyShiftId, t.consigneeId, t.consigneeCode, t.cargoId,
            t.jobMethodId, t.vesselId, t.agencyId, t.cargoDirectId, t.weightNetSum,
            t.quantityTotalSum, c.cargoGroupCode, c.cargoGroupId, t.createTime, t.updateTime
        FROM dbo.vwTallyShiftAll t
        LEFT JOIN dbo.vwCargo c ON t.cargoId = c.cargoId
        WHERE t.rowDeleted IS NULL AND t.weightNetSum > 0`

const volumeOrderBy = "t.shiftDate DESC, t.tallyShiftId"

// ListBulkGateVolumes returns gate/yard bulk volumes: movements whose vessel
// code marks a yard or warehouse origin.
func (s *Service) ListBulkGateVolumes(ctx context.Context, f VolumeFilter) ([]BulkGateVolume, error) {
	b := newBuilder(volumeSelect+" AND (t.vesselCode LIKE $1 OR t.vesselCode LIKE $2)", "%BÃI%", "%KHO%")
	applyVolumeFilters(b, f)
	query, args := b.Paginate(volumeOrderBy, f.Page, f.Limit)
	return listRows(ctx, s, query, args, s.mapBulkGateVolume)
}

// ListBulkQuayVolumes returns quay-side bulk volumes: ship operations
// excluding container cargo.
func (s *Service) ListBulkQuayVolumes(ctx context.Context, f VolumeFilter) ([]BulkQuayVolume, error) {
	b := newBuilder(volumeSelect+" AND t.jobMethodCode LIKE $1 AND (c.cargoGroupCode IS NULL OR c.cargoGroupCode <> 'Container')", "%TAU%")
	applyVolumeFilters(b, f)
	query, args := b.Paginate(volumeOrderBy, f.Page, f.Limit)
	return listRows(ctx, s, query, args, s.mapBulkQuayVolume)
}

// ListContainerQuayVolumes returns quay-side container volumes.
func (s *Service) ListContainerQuayVolumes(ctx context.Context, f VolumeFilter) ([]ContainerQuayVolume, error) {
	b := newBuilder(volumeSelect+" AND t.jobMethodCode LIKE $1 AND c.cargoGroupCode = 'Hàng Container'", "%TAU%")
	applyVolumeFilters(b, f)
	query, args := b.Paginate(volumeOrderBy, f.Page, f.Limit)
	return listRows(ctx, s, query, args, s.mapContainerQuayVolume)
}

func applyVolumeFilters(b *builder, f VolumeFilter) {
	if f.StartDate != "" {
		b.And("t.shiftDate >=", f.StartDate)
	}
	if f.EndDate != "" {
		b.And("t.shiftDate <=", f.EndDate)
	}
	if f.CompanyID != "" {
		b.And("t.consigneeId =", f.CompanyID)
	}
	if f.ShipID != "" {
		b.And("t.vesselId =", f.ShipID)
	}
	if f.HandlingMethodID != "" {
		b.And("t.jobMethodId =", f.HandlingMethodID)
	}
}

func (s *Service) mapBulkGateVolume(r Row) BulkGateVolume {
	return BulkGateVolume{
		ReportDate:       s.reportDate(),
		FinishDate:       r.Date("shiftDate"),
		CompanyID:        r.NumStr("consigneeId"),
		CargoTypeID:      r.NumStr("cargoGroupId"),
		CargoCategoryID:  r.NumStr("cargoId"),
		HandlingMethodID: r.NumStr("jobMethodId"),
		BulkOriginID:     r.NumStr("vesselId"),
		BulkWeight:       r.Float("weightNetSum"),
		CustomerCode:     r.Str("consigneeCode"),
	}
}

func (s *Service) mapBulkQuayVolume(r Row) BulkQuayVolume {
	return BulkQuayVolume{
		ReportDate:       s.reportDate(),
		FinishDate:       r.Date("shiftDate"),
		CompanyID:        r.NumStr("consigneeId"),
		ShipID:           r.NumStr("vesselId"),
		ShipAgentID:      r.NumStr("agencyId"),
		CargoTypeID:      r.NumStr("cargoGroupId"),
		CargoCategoryID:  r.NumStr("cargoId"),
		HandlingMethodID: r.NumStr("jobMethodId"),
		ShipClassID:      r.NumStr("cargoDirectId"),
		BulkOriginID:     r.NumStr("vesselId"),
		BulkWeight:       r.Float("weightNetSum"),
	}
}

func (s *Service) mapContainerQuayVolume(r Row) ContainerQuayVolume {
	return ContainerQuayVolume{
		ReportDate:          s.reportDate(),
		CompanyID:           r.NumStr("consigneeId"),
		ShipID:              r.NumStr("vesselId"),
		ClassID:             r.NumStr("cargoDirectId"),
		OriginID:            r.NumStr("vesselId"),
		ContainerWeight:     r.Float("weightNetSum"),
		ContainerTEU:        r.Int("quantityTotalSum"),
		HandlingMethodID:    r.NumStr("jobMethodId"),
		FinishDate:          r.Date("shiftDate"),
		ShipOperatorID:      r.Str("consigneeCode"),
		ContainerOperatorID: r.NumStr("consigneeId"),
	}
}
