package metadomain

import "slices"

// RateLimitCodes são os códigos da Marketing API que indicam limite de chamadas
var RateLimitCodes = []int{17, 613, 4, 80000, 80001, 80002, 80003, 80004}

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error,omitempty"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

func (e *ErrorResponse) HasError() bool {
	return e.Error != nil && (e.Error.Code != 0 || e.Error.Message != "")
}

func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error != nil && slices.Contains(RateLimitCodes, e.Error.Code)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error == nil {
		return false
	}

	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
