package report

import "context"

// Customer is the externally-visible khách hàng shape.
type Customer struct {
	ReportDate       string           `json:"reportDate"`
	CustomerCode     string           `json:"customerCode"`
	CustomerNameVN   string           `json:"customerNameVN"`
	CustomerNameEN   string           `json:"customerNameEN"`
	CustomerTaxCode  string           `json:"customerTaxCode"`
	CustomerPhoneNum string           `json:"customerPhoneNum"`
	CustomerAddress  string           `json:"customerAddress"`
	CustomerEmail    string           `json:"customerEmail"`
	IsCarrier        int              `json:"isCarrier"`
	IsAgent          int              `json:"isAgent"`
	CustomerStatus   string           `json:"customerStatus"`
	Metadata         CustomerMetadata `json:"metadata"`
}

// CustomerMetadata carries the soft-delete flag and last modification time.
type CustomerMetadata struct {
	IsDeleted    int     `json:"isDeleted"`
	ModifiedDate *string `json:"modifiedDate"`
}

// CustomerFilter is the optional predicate set for customer listings. Empty
// fields place no predicate.
type CustomerFilter struct {
	StartDate       string
	EndDate         string
	CustomerTaxCode string
	Page            int
	Limit           int
}

// dbo.Partner marks soft-deletion with an explicit zero-valued flag.
const customerListQuery = `
        SELECT
            partnerGuid, partnerCode, partnerShortName, partnerFullName, partnerFullNameEN,
            partnerTaxCode, partnerBankName, partnerBankNumber, partnerFax, partnerEmail,
            partnerTel, partnerWebsite, partnerAddress, partnerDirector, isCashPayment,
            cargoGroupListId, rowInvisible, rowDeleted, guid, createUserId, updateUserId,
            createTime, updateTime, fontColor, apiCode, partnerMemberListEmail,
            partnerMemberListMobile, buyerFullName, buyerIDNumber, partnerBudgetCode
        FROM dbo.Partner
        WHERE rowDeleted = 0`

const customerByCodeQuery = `
        SELECT
            partnerGuid, partnerCode, partnerShortName, partnerFullName, partnerFullNameEN,
            partnerTaxCode, partnerBankName, partnerBankNumber, partnerFax, partnerEmail,
            partnerTel, partnerWebsite, partnerAddress, partnerDirector, isCashPayment,
            cargoGroupListId, rowInvisible, rowDeleted, updateTime
        FROM dbo.Partner
        WHERE partnerCode = $1 AND rowDeleted = 0`

const msgCustomerNotFound = "Không tìm thấy khách hàng"

// ListCustomers returns active customers, filtered by modification date
// range and tax code when given.
func (s *Service) ListCustomers(ctx context.Context, f CustomerFilter) ([]Customer, error) {
	b := newBuilder(customerListQuery)
	if f.StartDate != "" {
		b.And("CAST(updateTime AS DATE) >=", f.StartDate)
	}
	if f.EndDate != "" {
		b.And("CAST(updateTime AS DATE) <=", f.EndDate)
	}
	if f.CustomerTaxCode != "" {
		b.And("partnerTaxCode =", f.CustomerTaxCode)
	}
	query, args := b.Paginate("partnerCode", f.Page, f.Limit)
	return listRows(ctx, s, query, args, s.mapCustomer)
}

// GetCustomer looks up a single customer by partner code.
func (s *Service) GetCustomer(ctx context.Context, code string) (Customer, error) {
	return getRow(ctx, s, customerByCodeQuery, []any{code}, s.mapCustomer, msgCustomerNotFound)
}

func (s *Service) mapCustomer(r Row) Customer {
	return Customer{
		ReportDate:       s.reportDate(),
		CustomerCode:     r.Str("partnerCode"),
		CustomerNameVN:   r.FirstStr("partnerFullName", "partnerShortName"),
		CustomerNameEN:   r.Str("partnerFullNameEN"),
		CustomerTaxCode:  r.Str("partnerTaxCode"),
		CustomerPhoneNum: r.Str("partnerTel"),
		CustomerAddress:  r.Str("partnerAddress"),
		CustomerEmail:    r.Str("partnerEmail"),
		IsCarrier:        0,
		IsAgent:          0,
		CustomerStatus:   "",
		Metadata: CustomerMetadata{
			IsDeleted:    r.Int("rowDeleted"),
			ModifiedDate: r.DateTime("updateTime"),
		},
	}
}
