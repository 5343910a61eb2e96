package dto

const (
	// MsgSuccess is returned whenever a query ran, even with zero rows.
	MsgSuccess = "Lấy dữ liệu thành công"
	// MsgNoData replaces MsgSuccess when the data sequence is empty. An
	// empty result is not an error: code stays "1".
	MsgNoData = "Không có dữ liệu"
)

// ListResponse is the envelope for every list endpoint.
type ListResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// SingleResponse is the envelope for every by-id endpoint.
type SingleResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OKList wraps a data sequence, picking the message by emptiness.
func OKList(data any, empty bool) ListResponse {
	msg := MsgSuccess
	if empty {
		msg = MsgNoData
	}
	return ListResponse{Code: "1", Message: msg, Data: data}
}

// OKSingle wraps a single item.
func OKSingle(data any) SingleResponse {
	return SingleResponse{Code: "1", Message: MsgSuccess, Data: data}
}
