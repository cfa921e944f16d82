package historico

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Cliente busca o histórico de ações no upstream e anota cada registro
// com a classificação normalizada.
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

// Listar busca uma página do histórico, mais recente primeiro.
func (c *Cliente) Listar(ctx context.Context, pageNumber, pageSize int) (Pagina, error) {
	path := fmt.Sprintf("/api/historicos/todos-processos?pageNumber=%d&pageSize=%d&sortBy=dataHora&sortOrder=desc", pageNumber, pageSize)
	var pagina Pagina
	if err := c.http.GetJSON(ctx, path, &pagina); err != nil {
		return Pagina{}, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	if pagina.Content == nil {
		pagina.Content = []Registro{}
	}
	for i := range pagina.Content {
		r := &pagina.Content[i]
		r.Entidade = strings.ToUpper(r.Entidade)
		r.AcaoNormalizada = ClassificarAcao(r.AcaoRealizada, r.Detalhe)
	}
	return pagina, nil
}
