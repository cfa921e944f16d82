package historico

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

func TestClassificarAcaoPrioridade(t *testing.T) {
	// exclusão ganha mesmo com "alterad" presente no mesmo texto
	assert.Equal(t, AcaoExcluir, ClassificarAcao("", "Status alterado e registro excluído"))

	// criação e exclusão juntas: exclusão vence por rodar primeiro
	assert.Equal(t, AcaoExcluir, ClassificarAcao("", "registro criado e depois removido"))

	assert.Equal(t, AcaoAtualizar, ClassificarAcao("", "Status alterado para AVISADA"))
	assert.Equal(t, AcaoCriar, ClassificarAcao("", "Recebimento de correspondência"))
	assert.Equal(t, AcaoCriar, ClassificarAcao("", "Aviso enviado à empresa"))
}

func TestClassificarAcaoEnumECrua(t *testing.T) {
	// rótulo cru que já é o enum, em qualquer caixa
	assert.Equal(t, AcaoAtualizar, ClassificarAcao("atualizar", ""))
	assert.Equal(t, AcaoExcluir, ClassificarAcao("EXCLUIR", ""))

	// rótulo desconhecido passa como veio
	assert.Equal(t, "MIGRACAO", ClassificarAcao("MIGRACAO", ""))

	// sem rótulo nenhum
	assert.Equal(t, AcaoOutra, ClassificarAcao("", ""))
}

func TestClassificarAcaoDeterminista(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, AcaoExcluir, ClassificarAcao("ajuste", "linha apagada"))
	}
}

func TestListarAnotaClassificacao(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/historicos/todos-processos", r.URL.Path)
		assert.Equal(t, "dataHora", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "desc", r.URL.Query().Get("sortOrder"))
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"id": 1, "entidade": "company", "acaoRealizada": "ajuste", "detalhe": "Empresa criada"},
				{"id": 2, "entidade": "CORRESPONDENCE", "acaoRealizada": "", "detalhe": "registro excluído"},
			},
			"pageNumber": 0,
			"totalPages": 1,
		})
	}))
	defer srv.Close()

	l := logrus.New()
	l.SetOutput(io.Discard)
	cliente := NovoCliente(httpclient.New(srv.URL, logrus.NewEntry(l)), logrus.NewEntry(l))

	pagina, err := cliente.Listar(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Len(t, pagina.Content, 2)
	assert.Equal(t, EntidadeEmpresa, pagina.Content[0].Entidade, "entidade normaliza para maiúscula")
	assert.Equal(t, AcaoCriar, pagina.Content[0].AcaoNormalizada)
	assert.Equal(t, AcaoExcluir, pagina.Content[1].AcaoNormalizada)
	assert.Equal(t, "ajuste", pagina.Content[0].AcaoRealizada, "rótulo cru preservado")
}
