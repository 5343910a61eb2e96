package report

import (
	"context"
	"fmt"
)

// HandlingMethod is the phương án tác nghiệp shape.
type HandlingMethod struct {
	ReportDate         string  `json:"reportDate"`
	HandlingMethodID   string  `json:"handlingMethodId"`
	HandlingMethodName string  `json:"handlingMethodName"`
	CreatedDate        *string `json:"createdDate"`
	ModifiedDate       *string `json:"modifiedDate"`
}

// Class is the hướng tàu (cargo direction) shape.
type Class struct {
	ReportDate   string  `json:"reportDate"`
	ClassID      string  `json:"classId"`
	ClassName    string  `json:"className"`
	CreatedDate  *string `json:"createdDate"`
	ModifiedDate *string `json:"modifiedDate"`
}

// Handling methods and classes are both distinct code/name pairs projected
// out of the tally view, so they share one statement template.
// dbo.vwTallyShiftAll marks active rows with a NULL flag, not zero; the two
// conventions are not interchangeable.
func tallyGroupedListQuery(codeCol, nameCol string) string {
	return fmt.Sprintf(`
        SELECT %[1]s, %[2]s, MIN(createTime) AS createTime, MAX(updateTime) AS updateTime
        FROM dbo.vwTallyShiftAll
        WHERE rowDeleted IS NULL AND %[1]s IS NOT NULL AND %[2]s IS NOT NULL
        GROUP BY %[1]s, %[2]s
        ORDER BY %[1]s OFFSET $1 LIMIT $2`, codeCol, nameCol)
}

func tallyGroupedByCodeQuery(codeCol, nameCol string) string {
	return fmt.Sprintf(`
        SELECT %[1]s, %[2]s, MIN(createTime) AS createTime, MAX(updateTime) AS updateTime
        FROM dbo.vwTallyShiftAll
        WHERE rowDeleted IS NULL AND %[1]s = $1
        GROUP BY %[1]s, %[2]s`, codeCol, nameCol)
}

var (
	handlingMethodListQuery   = tallyGroupedListQuery("jobMethodCode", "jobMethodName")
	handlingMethodByCodeQuery = tallyGroupedByCodeQuery("jobMethodCode", "jobMethodName")
	classListQuery            = tallyGroupedListQuery("cargoDirectCode", "cargoDirectName")
	classByCodeQuery          = tallyGroupedByCodeQuery("cargoDirectCode", "cargoDirectName")
)

const (
	msgHandlingMethodNotFound = "Không tìm thấy phương án tác nghiệp"
	msgClassNotFound          = "Không tìm thấy hướng tàu"
)

// ListHandlingMethods returns the distinct handling methods.
func (s *Service) ListHandlingMethods(ctx context.Context, p PageFilter) ([]HandlingMethod, error) {
	args := []any{(p.Page - 1) * p.Limit, p.Limit}
	return listRows(ctx, s, handlingMethodListQuery, args, s.mapHandlingMethod)
}

// GetHandlingMethod looks up one handling method by job method code.
func (s *Service) GetHandlingMethod(ctx context.Context, code string) (HandlingMethod, error) {
	return getRow(ctx, s, handlingMethodByCodeQuery, []any{code}, s.mapHandlingMethod, msgHandlingMethodNotFound)
}

// ListClasses returns the distinct cargo directions.
func (s *Service) ListClasses(ctx context.Context, p PageFilter) ([]Class, error) {
	args := []any{(p.Page - 1) * p.Limit, p.Limit}
	return listRows(ctx, s, classListQuery, args, s.mapClass)
}

// GetClass looks up one cargo direction by code.
func (s *Service) GetClass(ctx context.Context, code string) (Class, error) {
	return getRow(ctx, s, classByCodeQuery, []any{code}, s.mapClass, msgClassNotFound)
}

func (s *Service) mapHandlingMethod(r Row) HandlingMethod {
	return HandlingMethod{
		ReportDate:         s.reportDate(),
		HandlingMethodID:   r.Str("jobMethodCode"),
		HandlingMethodName: r.Str("jobMethodName"),
		CreatedDate:        r.DateTime("createTime"),
		ModifiedDate:       r.DateTime("updateTime"),
	}
}

func (s *Service) mapClass(r Row) Class {
	return Class{
		ReportDate:   s.reportDate(),
		ClassID:      r.Str("cargoDirectCode"),
		ClassName:    r.Str("cargoDirectName"),
		CreatedDate:  r.DateTime("createTime"),
		ModifiedDate: r.DateTime("updateTime"),
	}
}
