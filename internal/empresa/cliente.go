package empresa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Condições distintas de criação por nome, para a UI diferenciar do erro genérico.
var (
	ErrJaCadastrada      = errors.New("empresa já cadastrada no sistema")
	ErrNenhumaEncontrada = errors.New("nenhuma empresa encontrada com esse nome")
)

// Cliente unifica os dois registros de empresas upstream (Athena como
// primário, Conexa como fallback) atrás do envelope canônico de página.
type Cliente struct {
	http *httpclient.Client
	log  *logrus.Entry
}

func NovoCliente(http *httpclient.Client, log *logrus.Entry) *Cliente {
	return &Cliente{http: http, log: log}
}

// ComCookies devolve um Cliente que repassa aos upstreams os cookies vindos
// da requisição do dashboard.
func (c *Cliente) ComCookies(cookies []*http.Cookie) *Cliente {
	return &Cliente{http: c.http.ComCookies(cookies), log: c.log}
}

func caminhoPagina(origem string, pageNumber, pageSize int) string {
	return fmt.Sprintf("/api/empresas/%s/buscar-todos-registros?pageNumber=%d&pageSize=%d", origem, pageNumber, pageSize)
}

// BuscarEmpresas é o modo paginado no servidor: uma página do primário na
// posição pedida; primário com erro ou vazio cai inteiro para o secundário.
// Nunca mistura conteúdo das duas origens na mesma página.
func (c *Cliente) BuscarEmpresas(ctx context.Context, pageNumber, pageSize int) (Pagina, error) {
	var payload any
	err := c.http.GetJSON(ctx, caminhoPagina("athena", pageNumber, pageSize), &payload)
	if err != nil {
		c.log.WithError(err).Warn("athena indisponível, tentando conexa")
	} else if registros, meta, ok := DetectarPaginaAthena(payload); ok && len(registros) > 0 {
		return montarPagina(registros, pageSize, meta), nil
	}

	var payload2 any
	if err := c.http.GetJSON(ctx, caminhoPagina("conexa", pageNumber, pageSize), &payload2); err != nil {
		return Pagina{}, fmt.Errorf("erro ao buscar empresas: %w", err)
	}
	if registros, meta, ok := DetectarPaginaConexa(payload2); ok {
		return montarPagina(registros, pageSize, meta), nil
	}
	return paginaVazia(pageSize), nil
}

// fimDaVarredura decide se a varredura exaustiva para nesta página:
// lastPage explícito, página curta ou índice alcançou totalPages informado.
func fimDaVarredura(pagina int, qtd, pageSize int, meta metaPagina) bool {
	if meta.LastPage != nil && *meta.LastPage {
		return true
	}
	if qtd < pageSize {
		return true
	}
	if meta.TotalPages != nil && pagina+1 >= *meta.TotalPages {
		return true
	}
	return false
}

type detectorPagina func(any) ([]RawPayload, metaPagina, bool)

// varrerOrigem busca páginas sucessivas de uma origem até esgotar.
// Qualquer falha (rede, não-2xx, corpo irreconhecível) vale como "acabaram
// os dados": o agregado parcial é preferível a derrubar a visão inteira.
// primeiraVazia só fica true quando a página 0 veio válida e sem registros —
// falha na página 0 não conta como vazia.
func (c *Cliente) varrerOrigem(ctx context.Context, origem string, pageSize int, detectar detectorPagina) (empresas []Empresa, primeiraVazia bool) {
	for pagina := 0; ; pagina++ {
		var payload any
		if err := c.http.GetJSON(ctx, caminhoPagina(origem, pagina, pageSize), &payload); err != nil {
			c.log.WithError(err).WithFields(logrus.Fields{"origem": origem, "pagina": pagina}).
				Warn("varredura interrompida")
			return empresas, false
		}
		registros, meta, ok := detectar(payload)
		if !ok {
			c.log.WithFields(logrus.Fields{"origem": origem, "pagina": pagina}).
				Warn("formato de página irreconhecível, varredura interrompida")
			return empresas, false
		}
		if len(registros) == 0 {
			return empresas, pagina == 0
		}
		for _, r := range registros {
			empresas = append(empresas, MapearEmpresa(r))
		}
		if fimDaVarredura(pagina, len(registros), pageSize, meta) {
			return empresas, false
		}
	}
}

// BuscarTodasEmpresas é o modo agrega-tudo: varre todas as páginas do
// primário e devolve um único envelope sintético. A varredura só muda
// inteira para o secundário quando a página 0 do primário veio válida e
// vazia — falha na página 0 devolve o agregado vazio, sem fallback. O
// primário nunca é consultado além da página 0 quando a troca acontece.
func (c *Cliente) BuscarTodasEmpresas(ctx context.Context, pageSize int) (Pagina, error) {
	empresas, primeiraVazia := c.varrerOrigem(ctx, "athena", pageSize, DetectarPaginaAthena)
	if len(empresas) == 0 && primeiraVazia {
		empresas, _ = c.varrerOrigem(ctx, "conexa", pageSize, DetectarPaginaConexa)
	}
	if len(empresas) == 0 {
		return paginaVazia(pageSize), nil
	}
	return montarPaginaAgregada(empresas, pageSize), nil
}

// BuscarPorNomeModeloAthena pesquisa por nome no primário. 404 upstream
// significa "sem resultados", não erro.
func (c *Cliente) BuscarPorNomeModeloAthena(ctx context.Context, nome string) ([]Empresa, error) {
	var payload any
	err := c.http.GetJSON(ctx, "/api/empresas/athena/buscar-por-nome?nome="+url.QueryEscape(nome), &payload)
	if httpclient.StatusDe(err) == http.StatusNotFound {
		return []Empresa{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar empresas por nome: %w", err)
	}

	lista, ok := payload.([]any)
	if !ok {
		return []Empresa{}, nil
	}
	empresas := make([]Empresa, 0, len(lista))
	for _, item := range lista {
		raw, _ := item.(map[string]any)
		empresas = append(empresas, MapearEmpresa(raw))
	}
	return empresas, nil
}

// buscarRegistroUnico trata a mecânica comum dos endpoints de registro
// único: 404 vira nil, o Optional do backend é desembrulhado antes de
// normalizar.
func (c *Cliente) buscarRegistroUnico(ctx context.Context, path string) (*Empresa, error) {
	var payload any
	err := c.http.GetJSON(ctx, path, &payload)
	if httpclient.StatusDe(err) == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	valor, presente := InterpretarOpcional(payload).Valor()
	if !presente {
		return nil, nil
	}
	raw, ok := valor.(map[string]any)
	if !ok {
		return nil, errors.New("erro ao buscar empresa: resposta em formato inesperado")
	}
	e := MapearEmpresa(raw)
	return &e, nil
}

// BuscarPorID busca os detalhes de uma empresa. nil sem erro = não encontrada.
func (c *Cliente) BuscarPorID(ctx context.Context, id int64) (*Empresa, error) {
	return c.buscarRegistroUnico(ctx, fmt.Sprintf("/api/empresas/athena/buscar-por-id/%d", id))
}

// BuscarPorNome busca uma única empresa pelo nome exato.
func (c *Cliente) BuscarPorNome(ctx context.Context, nome string) (*Empresa, error) {
	return c.buscarRegistroUnico(ctx, "/api/empresas/athena/buscar-por-nome?nome="+url.QueryEscape(nome))
}

// CriarPorNome pede ao upstream a criação da empresa a partir do nome.
// 409 e 404 são condições próprias, que a UI mostra diferente da falha genérica.
func (c *Cliente) CriarPorNome(ctx context.Context, nomeEmpresa string) (Empresa, error) {
	var criado map[string]any
	err := c.http.EnviarJSON(ctx, http.MethodPost, "/api/empresas/criar-por-nome",
		map[string]string{"nomeEmpresa": nomeEmpresa}, &criado)
	switch httpclient.StatusDe(err) {
	case http.StatusConflict:
		return Empresa{}, ErrJaCadastrada
	case http.StatusNotFound:
		return Empresa{}, ErrNenhumaEncontrada
	}
	if err != nil {
		return Empresa{}, fmt.Errorf("erro ao criar empresa: %w", err)
	}
	return MapearEmpresa(criado), nil
}

// AlterarSituacao atualiza status/situação/mensagem via query params, como
// o upstream espera. Mensagem vai por ponteiro para distinguir "não mexer"
// de "gravar vazio".
func (c *Cliente) AlterarSituacao(ctx context.Context, id int64, novoStatus, novaSituacao string, novaMensagem *string) error {
	params := url.Values{}
	if novoStatus != "" {
		params.Set("novoStatus", novoStatus)
	}
	if novaSituacao != "" {
		params.Set("novaSituacao", novaSituacao)
	}
	if novaMensagem != nil {
		params.Set("novaMensagem", *novaMensagem)
	}
	path := fmt.Sprintf("/api/empresas/athena/alterar-empresa/modelo-athena/%d", id)
	if q := params.Encode(); q != "" {
		path += "?" + q
	}
	if err := c.http.EnviarJSON(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("erro ao alterar situação: %w", err)
	}
	return nil
}

// Deletar remove a empresa pelo id.
func (c *Cliente) Deletar(ctx context.Context, id int64) error {
	if err := c.http.Delete(ctx, fmt.Sprintf("/api/empresas/%d", id)); err != nil {
		return fmt.Errorf("erro ao excluir empresa: %w", err)
	}
	return nil
}
