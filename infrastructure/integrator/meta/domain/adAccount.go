package metadomain

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

type AdAccountsResponse struct {
	Data   []AdAccount `json:"data"`
	Paging Paging      `json:"paging"`
}
