package unidade

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Unidade é a filial usada no preenchimento do aditivo.
type Unidade struct {
	Nome     string `json:"unidadeNome"`
	CNPJ     string `json:"unidadeCnpj"`
	Endereco string `json:"unidadeEndereco"`
}

// Cliente consulta o serviço de unidades.
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

// ListarNomes devolve os nomes de unidade na ordem em que o upstream os
// mandou. Corpo que não seja lista de strings vale como vazio, não como erro.
func (c *Cliente) ListarNomes(ctx context.Context) ([]string, error) {
	var payload any
	if err := c.http.GetJSON(ctx, "/unidades", &payload); err != nil {
		return nil, fmt.Errorf("não foi possível carregar as unidades: %w", err)
	}
	lista, ok := payload.([]any)
	if !ok {
		return []string{}, nil
	}
	nomes := make([]string, 0, len(lista))
	for _, item := range lista {
		s, ok := item.(string)
		if !ok {
			return []string{}, nil
		}
		nomes = append(nomes, s)
	}
	return nomes, nil
}

// BuscarPorNome devolve os dados da unidade, ou nil quando não existe.
// Campos ausentes caem nos defaults (nome pedido, demais vazios).
func (c *Cliente) BuscarPorNome(ctx context.Context, nome string) (*Unidade, error) {
	if nome == "" {
		return nil, nil
	}
	var payload map[string]any
	err := c.http.GetJSON(ctx, "/unidades/"+url.PathEscape(nome), &payload)
	if httpclient.StatusDe(err) == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar detalhes da unidade: %w", err)
	}

	u := Unidade{Nome: nome}
	if s, ok := payload["unidadeNome"].(string); ok {
		u.Nome = s
	}
	if s, ok := payload["unidadeCnpj"].(string); ok {
		u.CNPJ = s
	}
	if s, ok := payload["unidadeEndereco"].(string); ok {
		u.Endereco = s
	}
	return &u, nil
}
