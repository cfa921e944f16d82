package empresa

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
)

func TestAtualizadorComitaSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": registrosFalsos(5, 0), "lastPage": true})
	}))
	defer srv.Close()

	cliente := NovoCliente(httpclient.New(srv.URL, logSilencioso()), logSilencioso())
	barramento := notificacao.NovoBarramento()
	a := NovoAtualizador(cliente, nil, barramento, 10*time.Millisecond, 50, logSilencioso())
	defer a.Fechar()

	assert.Empty(t, a.Snapshot().Content, "snapshot começa vazio")

	a.Atualizar()

	snap := a.Snapshot()
	require.Len(t, snap.Content, 5)
	assert.Equal(t, 5, snap.TotalElements)
	assert.True(t, snap.LastPage)
}

func TestAtualizadorCoalesceEventosDoBarramento(t *testing.T) {
	var buscas atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buscas.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"content": registrosFalsos(1, 0), "lastPage": true})
	}))
	defer srv.Close()

	cliente := NovoCliente(httpclient.New(srv.URL, logSilencioso()), logSilencioso())
	barramento := notificacao.NovoBarramento()
	a := NovoAtualizador(cliente, nil, barramento, 60*time.Millisecond, 50, logSilencioso())
	defer a.Fechar()

	// rajada de eventos dentro do período quieto
	for i := 0; i < 5; i++ {
		barramento.Publicar(notificacao.Evento{Entidade: notificacao.EntidadeEmpresa, Acao: notificacao.AcaoAtualizar})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(250 * time.Millisecond)
	assert.EqualValues(t, 1, buscas.Load(), "a rajada coalesce em um único refresh")
	assert.Len(t, a.Snapshot().Content, 1)
}

func TestAtualizadorFalhaTotalComitaVazio(t *testing.T) {
	var falhar atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if falhar.Load() {
			http.Error(w, "fora do ar", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"content": registrosFalsos(3, 0), "lastPage": true})
	}))
	defer srv.Close()

	cliente := NovoCliente(httpclient.New(srv.URL, logSilencioso()), logSilencioso())
	a := NovoAtualizador(cliente, nil, notificacao.NovoBarramento(), 10*time.Millisecond, 50, logSilencioso())
	defer a.Fechar()

	a.Atualizar()
	require.Len(t, a.Snapshot().Content, 3)

	// upstream caiu: a página 0 do primário falha, o agregado vem vazio
	// sem erro e substitui o anterior. Lista com falha limpa o conteúdo
	// em vez de congelar dado velho
	falhar.Store(true)
	a.Atualizar()
	assert.Empty(t, a.Snapshot().Content)
}
