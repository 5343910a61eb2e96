package report

import "context"

// Ship is the tàu shape. Dimension fields are nullable strings; ship
// timestamps are the one resource rendered with millisecond-precision UTC
// and a literal Z suffix.
type Ship struct {
	ReportDate   string  `json:"reportDate"`
	ShipID       string  `json:"shipId"`
	ShipIMO      string  `json:"shipIMO"`
	ShipFullName string  `json:"shipFullName"`
	ShipGroup    string  `json:"shipGroup"`
	FlagState    string  `json:"flagState"`
	ShipLOA      *string `json:"shipLOA"`
	ShipBeam     *string `json:"shipBeam"`
	ShipGRT      *string `json:"shipGRT"`
	ShipType     *string `json:"shipType"`
	ShipDWT      *string `json:"shipDWT"`
	ShipOwner    *string `json:"shipOwner"`
	CreatedDate  *string `json:"createdDate"`
	ModifiedDate *string `json:"modifiedDate"`
}

// dbo.Vessel marks soft-deletion with an explicit zero-valued flag.
const shipListQuery = `
        SELECT
            vesselId, vesselCode, vesselName, numberIMO, vesselTypeId, countryId,
            vesselGT, vesselBEAM, vesselLOA, vesselDWT, ownerId, createTime, updateTime
        FROM dbo.Vessel
        WHERE rowDeleted = 0`

const shipByIMOQuery = `
        SELECT
            vesselId, vesselCode, vesselName, numberIMO, vesselTypeId, countryId,
            vesselGT, vesselBEAM, vesselLOA, vesselDWT, ownerId, createTime, updateTime
        FROM dbo.Vessel
        WHERE rowDeleted = 0 AND numberIMO = $1`

const msgShipNotFound = "Không tìm thấy tàu"

// ListShips returns active vessels.
func (s *Service) ListShips(ctx context.Context, p PageFilter) ([]Ship, error) {
	b := newBuilder(shipListQuery)
	query, args := b.Paginate("vesselId", p.Page, p.Limit)
	return listRows(ctx, s, query, args, s.mapShip)
}

// GetShipByIMO looks up one vessel by its IMO number.
func (s *Service) GetShipByIMO(ctx context.Context, imo string) (Ship, error) {
	return getRow(ctx, s, shipByIMOQuery, []any{imo}, s.mapShip, msgShipNotFound)
}

func (s *Service) mapShip(r Row) Ship {
	return Ship{
		ReportDate:   s.reportDate(),
		ShipID:       r.Str("vesselId"),
		ShipIMO:      r.Str("numberIMO"),
		ShipFullName: r.Str("vesselName"),
		ShipGroup:    "",
		FlagState:    r.NumStr("countryId"),
		ShipLOA:      r.NumStrPtr("vesselLOA"),
		ShipBeam:     r.NumStrPtr("vesselBEAM"),
		ShipGRT:      r.NumStrPtr("vesselGT"),
		ShipType:     r.NumStrPtr("vesselTypeId"),
		ShipDWT:      r.NumStrPtr("vesselDWT"),
		ShipOwner:    r.NumStrPtr("ownerId"),
		CreatedDate:  r.DateTimeMillisUTC("createTime"),
		ModifiedDate: r.DateTimeMillisUTC("updateTime"),
	}
}
