package report

import (
	"context"
	"strconv"
)

// CargoCategory is the nhóm hàng hóa shape.
type CargoCategory struct {
	ReportDate    string  `json:"reportDate"`
	CargoID       int     `json:"cargoId"`
	CargoParentID int     `json:"cargoParentId"`
	CargoTypeID   int     `json:"cargoTypeId"`
	CargoName     string  `json:"cargoName"`
	CreatedDate   *string `json:"createdDate"`
	ModifiedDate  *string `json:"modifiedDate"`
}

// CargoType is the loại hàng shape, derived from the cargo view's grouping
// columns.
type CargoType struct {
	ReportDate    string  `json:"reportDate"`
	CargoTypeID   string  `json:"cargoTypeId"`
	CargoTypeName string  `json:"cargoTypeName"`
	CreatedDate   *string `json:"createdDate"`
	ModifiedDate  *string `json:"modifiedDate"`
}

// CargoCategoryFilter narrows listings by cargo group. Zero means no
// predicate.
type CargoCategoryFilter struct {
	CargoTypeID int
	Page        int
	Limit       int
}

// dbo.vwCargo marks soft-deletion with an explicit zero-valued flag.
const cargoCategoryListQuery = `
        SELECT
            cargoId, cargoCode, cargoName, cargoGroupId, cargoGroupBillingId, customsHsCodeId,
            rowInvisible, rowDeleted, createUserId, updateUserId, createTime, updateTime,
            cargoGroupCode, cargoGroupName, cargoGroupDescription, cargoGroupBillingCode,
            cargoGroupBillingName, cargoGroupBillingDescription
        FROM dbo.vwCargo
        WHERE rowDeleted = 0`

const cargoCategoryByIDQuery = `
        SELECT
            cargoId, cargoCode, cargoName, cargoGroupId, cargoGroupBillingId, customsHsCodeId,
            rowInvisible, rowDeleted, createUserId, updateUserId, createTime, updateTime,
            cargoGroupCode, cargoGroupName, cargoGroupDescription, cargoGroupBillingCode,
            cargoGroupBillingName, cargoGroupBillingDescription
        FROM dbo.vwCargo
        WHERE cargoId = $1 AND rowDeleted = 0`

const cargoTypeListQuery = `
        SELECT cargoGroupId, cargoGroupCode, cargoGroupName,
               MIN(createTime) AS createTime, MAX(updateTime) AS updateTime
        FROM dbo.vwCargo
        WHERE rowDeleted = 0 AND cargoGroupId IS NOT NULL AND cargoGroupName IS NOT NULL
        GROUP BY cargoGroupId, cargoGroupCode, cargoGroupName
        ORDER BY cargoGroupId OFFSET $1 LIMIT $2`

const cargoTypeByGroupIDQuery = `
        SELECT cargoGroupId, cargoGroupCode, cargoGroupName,
               MIN(createTime) AS createTime, MAX(updateTime) AS updateTime
        FROM dbo.vwCargo
        WHERE cargoGroupId = $1 AND rowDeleted = 0
        GROUP BY cargoGroupId, cargoGroupCode, cargoGroupName`

const cargoTypeByGroupCodeQuery = `
        SELECT cargoGroupId, cargoGroupCode, cargoGroupName,
               MIN(createTime) AS createTime, MAX(updateTime) AS updateTime
        FROM dbo.vwCargo
        WHERE cargoGroupCode = $1 AND rowDeleted = 0
        GROUP BY cargoGroupId, cargoGroupCode, cargoGroupName`

const (
	msgCargoCategoryNotFound = "Không tìm thấy nhóm hàng hóa"
	msgCargoTypeNotFound     = "Không tìm thấy loại hàng hóa"
)

// ListCargoCategories returns active cargo groups, optionally scoped to one
// cargo type.
func (s *Service) ListCargoCategories(ctx context.Context, f CargoCategoryFilter) ([]CargoCategory, error) {
	b := newBuilder(cargoCategoryListQuery)
	if f.CargoTypeID != 0 {
		b.And("cargoGroupId =", f.CargoTypeID)
	}
	query, args := b.Paginate("cargoId", f.Page, f.Limit)
	return listRows(ctx, s, query, args, s.mapCargoCategory)
}

// GetCargoCategory looks up one cargo group by numeric id.
func (s *Service) GetCargoCategory(ctx context.Context, id int) (CargoCategory, error) {
	return getRow(ctx, s, cargoCategoryByIDQuery, []any{id}, s.mapCargoCategory, msgCargoCategoryNotFound)
}

// ListCargoTypes returns the distinct cargo group types.
func (s *Service) ListCargoTypes(ctx context.Context, p PageFilter) ([]CargoType, error) {
	args := []any{(p.Page - 1) * p.Limit, p.Limit}
	return listRows(ctx, s, cargoTypeListQuery, args, s.mapCargoType)
}

// GetCargoType looks up a cargo type. The id is polymorphic on its lexical
// shape: an integer matches the numeric grouping key, anything else the
// grouping code string. An id that parses as an integer must take the
// numeric path even when a code with the same spelling exists.
func (s *Service) GetCargoType(ctx context.Context, id string) (CargoType, error) {
	if groupID, err := strconv.Atoi(id); err == nil {
		return getRow(ctx, s, cargoTypeByGroupIDQuery, []any{groupID}, s.mapCargoType, msgCargoTypeNotFound)
	}
	return getRow(ctx, s, cargoTypeByGroupCodeQuery, []any{id}, s.mapCargoType, msgCargoTypeNotFound)
}

func (s *Service) mapCargoCategory(r Row) CargoCategory {
	return CargoCategory{
		ReportDate:    s.reportDate(),
		CargoID:       r.Int("cargoId"),
		CargoParentID: 0,
		CargoTypeID:   r.Int("cargoGroupId"),
		CargoName:     r.FirstStr("cargoName", "cargoGroupName"),
		CreatedDate:   r.DateTime("createTime"),
		ModifiedDate:  r.DateTime("updateTime"),
	}
}

func (s *Service) mapCargoType(r Row) CargoType {
	id := r.NumStr("cargoGroupId")
	if id == "" {
		id = r.Str("cargoGroupCode")
	}
	return CargoType{
		ReportDate:    s.reportDate(),
		CargoTypeID:   id,
		CargoTypeName: r.Str("cargoGroupName"),
		CreatedDate:   r.DateTime("createTime"),
		ModifiedDate:  r.DateTime("updateTime"),
	}
}
