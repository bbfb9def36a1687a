package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
)

const maxAccountPages = 100

// GetAdAccounts lista as contas do token seguindo paging.next até o fim
func (c *MetaClient) GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", "id,name,account_status,currency,timezone_name")
	params.Set("limit", "50")

	var page metadomain.AdAccountsResponse
	if err := c.get(ctx, "ad accounts", "me/adaccounts", params, &page); err != nil {
		return nil, err
	}

	accounts := page.Data
	for pages := 1; page.Paging.Next != ""; pages++ {
		if pages >= maxAccountPages {
			logrus.WithField("pages", pages).Warn("meta: limite de páginas de contas atingido")
			break
		}

		next := page.Paging.Next
		page = metadomain.AdAccountsResponse{}
		if err := c.getURL(ctx, "ad accounts", next, &page); err != nil {
			return nil, err
		}

		accounts = append(accounts, page.Data...)
	}

	return accounts, nil
}
