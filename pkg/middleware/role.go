package middleware

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

// AccountOwnership restringe as rotas /v1/accounts/:account_id ao cliente dono da conta.
// Precisa ser registrado por rota (router.Handler) para enxergar os parâmetros do httprouter.
// Conta inexistente segue adiante e a consulta responde vazio.
func AccountOwnership(accountService account.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
				return
			}

			accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")

			err := accountService.CheckOwnership(r.Context(), claims.ClientID, accountID)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			var accErr *account.AccountError
			if !errors.As(err, &accErr) {
				logrus.WithError(err).Error("Erro ao verificar dono da conta")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao verificar a conta", nil)
				return
			}

			if errors.Is(err, account.ErrAccountForbidden) {
				logrus.Warningf("Acesso negado para cliente %s na conta %s", claims.ClientID, accountID)
				apiErrors.WriteError(w, accErr.Code, "Você não tem permissão para acessar esta conta", nil)
				return
			}

			apiErrors.WriteError(w, accErr.Code, accErr.Details, nil)
		})
	}
}
