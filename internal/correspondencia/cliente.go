package correspondencia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Cliente fala com a API de correspondências upstream.
type Cliente struct {
	http *httpclient.Client
	log  *logrus.Entry
}

func NovoCliente(http *httpclient.Client, log *logrus.Entry) *Cliente {
	return &Cliente{http: http, log: log}
}

// ComCookies devolve um Cliente que repassa ao upstream os cookies vindos
// da requisição do dashboard.
func (c *Cliente) ComCookies(cookies []*http.Cookie) *Cliente {
	return &Cliente{http: c.http.ComCookies(cookies), log: c.log}
}

// Listar busca uma página, com termo de busca opcional.
func (c *Cliente) Listar(ctx context.Context, pageNumber, pageSize int, termo string) (Pagina, error) {
	path := fmt.Sprintf("/api/correspondencias/listar-correspondencia?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
	if termo != "" {
		path += "&termo=" + url.QueryEscape(termo)
	}
	var pagina Pagina
	if err := c.http.GetJSON(ctx, path, &pagina); err != nil {
		return Pagina{}, fmt.Errorf("erro ao buscar correspondências: %w", err)
	}
	if pagina.Content == nil {
		pagina.Content = []Correspondencia{}
	}
	return pagina, nil
}

type processarRequest struct {
	NomeEmpresaConexa string `json:"nomeEmpresaConexa"`
	Remetente         string `json:"remetente"`
}

// Processar registra uma correspondência sem foto (JSON puro).
func (c *Cliente) Processar(ctx context.Context, nomeEmpresa, remetente string) (Correspondencia, error) {
	var criada Correspondencia
	corpo := processarRequest{NomeEmpresaConexa: nomeEmpresa, Remetente: remetente}
	err := c.http.EnviarJSON(ctx, http.MethodPost, "/api/correspondencias/processar-correspondencia", corpo, &criada)
	if err != nil {
		return Correspondencia{}, fmt.Errorf("erro ao processar correspondência: %w", err)
	}
	return criada, nil
}

// ProcessarComFoto registra uma correspondência anexando a foto (multipart).
func (c *Cliente) ProcessarComFoto(ctx context.Context, nomeEmpresa, remetente string, foto httpclient.Arquivo) (Correspondencia, error) {
	var criada Correspondencia
	campos := map[string]string{
		"nomeEmpresa": nomeEmpresa,
		"remetente":   remetente,
	}
	err := c.http.EnviarMultipart(ctx, http.MethodPost,
		"/api/correspondencias/processar-correspondencia/receber-com-foto",
		campos, []httpclient.Arquivo{foto}, &criada)
	if err != nil {
		return Correspondencia{}, fmt.Errorf("erro ao processar correspondência com foto: %w", err)
	}
	return criada, nil
}

// AlterarStatus faz o PATCH multipart: uma parte JSON com a mudança e zero
// ou mais arquivos. Enviar é forçado quando há anexos.
func (c *Cliente) AlterarStatus(ctx context.Context, id int64, mudanca MudancaStatus, anexos []httpclient.Arquivo) error {
	if len(anexos) > 0 {
		mudanca.Enviar = true
	}
	parteJSON, err := json.Marshal(mudanca)
	if err != nil {
		return err
	}
	campos := map[string]string{"dados": string(parteJSON)}
	path := fmt.Sprintf("/api/correspondencias/%d/status", id)
	if err := c.http.EnviarMultipart(ctx, http.MethodPatch, path, campos, anexos, nil); err != nil {
		return fmt.Errorf("erro ao atualizar correspondência: %w", err)
	}
	return nil
}

// Apagar remove a correspondência.
func (c *Cliente) Apagar(ctx context.Context, id int64) error {
	if err := c.http.Delete(ctx, fmt.Sprintf("/api/correspondencias/%d", id)); err != nil {
		return fmt.Errorf("erro ao apagar a correspondência: %w", err)
	}
	return nil
}

// URLArquivo monta a URL pública da foto anexada, servida pelo upstream.
func (c *Cliente) URLArquivo(referencia string) string {
	return c.http.Base + "/api/correspondencias/arquivo/" + url.PathEscape(referencia)
}
