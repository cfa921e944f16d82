package aditivo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// ErrValidacao indica falha de validação local: nenhuma requisição foi enviada.
var ErrValidacao = errors.New("preencha a unidade e a data de início do contrato")

// Cliente dispara a geração do aditivo no serviço de correspondências e
// baixa o documento pronto no serviço de aditivos.
type Cliente struct {
	correspondencias *httpclient.Client
	// base do microserviço de aditivos, usada para resolver urlDownload relativa
	baseAditivos string
	validar      *validator.Validate
	log          *logrus.Entry
	// cookies da requisição do dashboard, repassados também no download
	cookies []*http.Cookie
}

func NovoCliente(correspondencias *httpclient.Client, baseAditivos string, log *logrus.Entry) *Cliente {
	return &Cliente{
		correspondencias: correspondencias,
		baseAditivos:     strings.TrimRight(baseAditivos, "/"),
		validar:          validator.New(),
		log:              log,
	}
}

// ComCookies devolve um Cliente que repassa aos upstreams os cookies vindos
// da requisição do dashboard.
func (c *Cliente) ComCookies(cookies []*http.Cookie) *Cliente {
	clone := *c
	clone.correspondencias = c.correspondencias.ComCookies(cookies)
	clone.cookies = cookies
	return &clone
}

type criarAditivoUpstream struct {
	PessoaFisicaCpf        string `json:"pessoaFisicaCpf"`
	PessoaJuridicaNome     string `json:"pessoaJuridicaNome"`
	PessoaJuridicaCnpj     string `json:"pessoaJuridicaCnpj"`
	PessoaJuridicaEndereco string `json:"pessoaJuridicaEndereco"`
	DataInicioContrato     string `json:"dataInicioContrato"`
}

// Criar valida localmente, dispara a geração e devolve a resposta com a
// URL de download resolvida para absoluta.
func (c *Cliente) Criar(ctx context.Context, req CriarRequest, empresaID int64) (Resposta, error) {
	if err := c.validar.Struct(req); err != nil {
		return Resposta{}, fmt.Errorf("%w: %s", ErrValidacao, err)
	}
	if empresaID <= 0 {
		empresaID = 1
	}

	path := fmt.Sprintf("/api/correspondencias/criar-aditivo?nomeUnidade=%s&empresaId=%d",
		url.QueryEscape(req.UnidadeNome), empresaID)
	corpo := criarAditivoUpstream{
		PessoaFisicaCpf:        req.PessoaFisicaCpf,
		PessoaJuridicaNome:     req.PessoaJuridicaNome,
		PessoaJuridicaCnpj:     req.PessoaJuridicaCnpj,
		PessoaJuridicaEndereco: req.PessoaJuridicaEndereco,
		DataInicioContrato:     req.DataInicioContrato,
	}

	var resultado map[string]any
	if err := c.correspondencias.EnviarJSON(ctx, http.MethodPost, path, corpo, &resultado); err != nil {
		return Resposta{}, fmt.Errorf("erro ao criar aditivo: %w", err)
	}
	return c.montarResposta(resultado), nil
}

func texto(m map[string]any, chaves ...string) string {
	for _, chave := range chaves {
		if s, ok := m[chave].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func (c *Cliente) montarResposta(resultado map[string]any) Resposta {
	id := texto(resultado, "aditivoId", "id")
	return Resposta{
		ID:          id,
		Status:      texto(resultado, "status"),
		Mensagem:    texto(resultado, "mensagem"),
		NomeArquivo: texto(resultado, "caminhoDocumentoDocx", "nomeArquivo"),
		URLDownload: c.ResolverURLDownload(texto(resultado, "urlDownload", "url", "download_url"), id),
	}
}

// ResolverURLDownload garante URL absoluta: caminho relativo é resolvido
// contra a base do serviço de aditivos; URL vazia com id conhecido cai no
// caminho padrão /aditivos/{id}/download.
func (c *Cliente) ResolverURLDownload(u, id string) string {
	if u == "" && id != "" {
		u = "/aditivos/" + id + "/download"
	}
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if c.baseAditivos == "" {
		c.log.WithField("url", u).Warn("base do serviço de aditivos não configurada, devolvendo URL relativa")
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return c.baseAditivos + u
}

// ExtrairNomeArquivo tira o filename do content-disposition, caindo no
// padrão quando o header falta ou não parseia.
func ExtrairNomeArquivo(disposition, padrao string) string {
	if disposition == "" {
		return padrao
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return padrao
	}
	if nome := params["filename"]; nome != "" {
		return nome
	}
	return padrao
}

// Documento é o binário gerado, pronto para ser servido ao usuário.
type Documento struct {
	Conteudo    io.ReadCloser
	NomeArquivo string
	ContentType string
}

// Baixar busca o documento na URL (já absoluta) de download.
func (c *Cliente) Baixar(ctx context.Context, urlDownload, nomePadrao string) (*Documento, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlDownload, nil)
	if err != nil {
		return nil, err
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download falhou: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		corpo, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("download falhou (%d): %s", resp.StatusCode, strings.TrimSpace(string(corpo)))
	}
	return &Documento{
		Conteudo:    resp.Body,
		NomeArquivo: ExtrairNomeArquivo(resp.Header.Get("Content-Disposition"), nomePadrao),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
