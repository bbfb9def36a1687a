package domain

import (
	"strings"
	"time"
)

const metaAccountPrefix = "act_"

type AdAccountStatus string

const (
	AdAccountStatusActive            AdAccountStatus = "ACTIVE"
	AdAccountStatusDisabled          AdAccountStatus = "DISABLED"
	AdAccountStatusUnsettled         AdAccountStatus = "UNSETTLED"
	AdAccountStatusPendingRiskReview AdAccountStatus = "PENDING_RISK_REVIEW"
	AdAccountStatusPendingClosure    AdAccountStatus = "PENDING_CLOSURE"
	AdAccountStatusClosed            AdAccountStatus = "CLOSED"
	AdAccountStatusUnknown           AdAccountStatus = "UNKNOWN"
)

// AdAccountStatusFromCode traduz o account_status numérico da Meta
func AdAccountStatusFromCode(code int) AdAccountStatus {
	switch code {
	case 1:
		return AdAccountStatusActive
	case 2:
		return AdAccountStatusDisabled
	case 3:
		return AdAccountStatusUnsettled
	case 7:
		return AdAccountStatusPendingRiskReview
	case 100:
		return AdAccountStatusPendingClosure
	case 101:
		return AdAccountStatusClosed
	default:
		return AdAccountStatusUnknown
	}
}

// AdAccount é uma conta de anúncio vinculada a um cliente (tenant)
type AdAccount struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	MetaAccountID string          `json:"meta_account_id"`
	Name          string          `json:"account_name"`
	Status        AdAccountStatus `json:"account_status"`
	Currency      string          `json:"currency"`
	TimezoneName  string          `json:"timezone_name"`
	LastSyncAt    *time.Time      `json:"last_sync_at"`
}

// MetaRef devolve a referência usada nas chamadas da Graph API (act_XXXX)
func (a *AdAccount) MetaRef() string {
	return MetaAccountRef(a.MetaAccountID)
}

// AccountInfo é a conta como listada pela Meta em /me/adaccounts
type AccountInfo struct {
	MetaAccountID string `json:"id"`
	Name          string `json:"name"`
	StatusCode    int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

// MetaAccountRef garante o prefixo act_ exigido pela Graph API
func MetaAccountRef(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, metaAccountPrefix) {
		return id
	}

	return metaAccountPrefix + id
}

type SyncAccountsResponse struct {
	Quantity int          `json:"quantity"`
	Message  string       `json:"message"`
	Error    bool         `json:"error"`
	Accounts []*AdAccount `json:"accounts"`
}
