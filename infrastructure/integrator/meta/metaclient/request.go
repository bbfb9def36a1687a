package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// get monta a URL a partir do caminho relativo à versão da Graph API
func (c *MetaClient) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimSuffix(c.baseURL, "/"), strings.TrimPrefix(path, "/"), params.Encode())

	return c.getURL(ctx, operation, endpoint, out)
}

// getURL é usado diretamente para seguir paging.next, que já vem com o token
func (c *MetaClient) getURL(ctx context.Context, operation, endpoint string, out any) error {
	started := time.Now()

	err := c.doGet(ctx, operation, endpoint, out)

	outcome := metrics.OutcomeOK
	switch {
	case domain.IsRateLimited(err):
		outcome = metrics.OutcomeRateLimited
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.RecordUpstreamRequest(operation, outcome, started)

	return err
}

func (c *MetaClient) doGet(ctx context.Context, operation, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewUpstreamError(operation, 0, err.Error(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return domain.NewUpstreamError(operation, 0, err.Error(), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("operation", operation).Error("Erro ao fazer a requisição")
		return domain.NewUpstreamError(operation, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewUpstreamError(operation, 0, fmt.Sprintf("erro ao ler resposta: %s", err), err)
	}

	if err := checkResponse(operation, resp.StatusCode, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("operation", operation).Error("Erro ao decodificar JSON")
		return domain.NewUpstreamError(operation, resp.StatusCode, "resposta inválida da Meta", err)
	}

	return nil
}

// checkResponse procura o envelope {error:{code,message}} antes de olhar o status HTTP,
// porque a Meta devolve erros de limite tanto com 400 quanto com 200.
func checkResponse(operation string, statusCode int, body []byte) error {
	var envelope metadomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.HasError() {
		fields := logrus.Fields{
			"operation":  operation,
			"code":       envelope.Error.Code,
			"subcode":    envelope.Error.ErrorSubcode,
			"fbtrace_id": envelope.Error.FBTraceID,
		}

		switch {
		case envelope.IsRateLimited():
			logrus.WithFields(fields).Warn("meta: limite de chamadas atingido")
			return domain.NewRateLimitedError(operation, envelope.Error.Code, envelope.Error.Message)
		case envelope.IsTokenExpired():
			logrus.WithFields(fields).Error("meta: token de acesso expirado, gere um novo META_ACCESS_TOKEN")
		default:
			logrus.WithFields(fields).Error("meta: erro retornado pela API")
		}

		return domain.NewUpstreamError(operation, envelope.Error.Code, envelope.Error.Message, nil)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return domain.NewUpstreamError(operation, statusCode, fmt.Sprintf("status HTTP inesperado %d", statusCode), nil)
	}

	return nil
}
