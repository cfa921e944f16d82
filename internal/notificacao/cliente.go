package notificacao

import (
	"context"
	"net/http"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Cliente dispara os avisos de correspondência por email via serviço upstream.
type Cliente struct {
	http *httpclient.Client
}

func NovoCliente(http *httpclient.Client) *Cliente {
	return &Cliente{http: http}
}

// ComCookies devolve um Cliente que repassa ao upstream os cookies vindos
// da requisição do dashboard.
func (c *Cliente) ComCookies(cookies []*http.Cookie) *Cliente {
	return &Cliente{http: c.http.ComCookies(cookies)}
}

type avisoRequest struct {
	NomeEmpresaConexa string   `json:"nomeEmpresaConexa"`
	Anexos            bool     `json:"anexos"`
	AnexosUrls        []string `json:"anexosUrls"`
}

// EnviarAviso manda o email informativo sem anexo para a empresa.
func (c *Cliente) EnviarAviso(ctx context.Context, nomeEmpresa string) error {
	corpo := avisoRequest{
		NomeEmpresaConexa: nomeEmpresa,
		Anexos:            false,
		AnexosUrls:        []string{},
	}
	return c.http.EnviarJSON(ctx, http.MethodPost, "/api/correspondencias/email-informativo", corpo, nil)
}

// EnviarAvisoComAnexos manda o email informativo anexando os arquivos.
func (c *Cliente) EnviarAvisoComAnexos(ctx context.Context, nomeEmpresa string, arquivos []httpclient.Arquivo) error {
	campos := map[string]string{"nomeEmpresaConexa": nomeEmpresa}
	return c.http.EnviarMultipart(ctx, http.MethodPost, "/api/correspondencias/email-informativo/com-anexos", campos, arquivos, nil)
}
