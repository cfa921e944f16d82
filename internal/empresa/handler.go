package empresa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
)

// Handler expõe o registro unificado de empresas para o dashboard.
type Handler struct {
	Cliente     *Cliente
	Atualizador *Atualizador
	Barramento  *notificacao.Barramento
}

func NewHandler(cliente *Cliente, atualizador *Atualizador, barramento *notificacao.Barramento) *Handler {
	return &Handler{Cliente: cliente, Atualizador: atualizador, Barramento: barramento}
}

func lerInt(r *http.Request, chave string, padrao int) int {
	if v := r.URL.Query().Get(chave); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return padrao
}

func responderJSON(w http.ResponseWriter, status int, corpo any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(corpo)
}

// Listar atende a visão paginada. Com `termo`, vira busca por nome (sem
// paginação upstream: resultado volta como página única) e a visão zera a
// página ao comitar o termo.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pageNumber := lerInt(r, "pageNumber", 0)
	pageSize := lerInt(r, "pageSize", 20)
	if pageSize <= 0 {
		pageSize = 20
	}
	cliente := h.Cliente.ComCookies(r.Cookies())

	if termo := r.URL.Query().Get("termo"); termo != "" {
		encontradas, err := cliente.BuscarPorNomeModeloAthena(r.Context(), termo)
		if err != nil {
			httpclient.ResponderFalha(w, err, "erro ao buscar empresas")
			return
		}
		responderJSON(w, http.StatusOK, montarPaginaAgregada(encontradas, pageSize))
		return
	}

	pagina, err := cliente.BuscarEmpresas(r.Context(), pageNumber, pageSize)
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar empresas")
		return
	}
	responderJSON(w, http.StatusOK, pagina)
}

// ListarTodas atende quem quer tudo de uma vez (modo agrega-tudo ao vivo).
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	pageSize := lerInt(r, "pageSize", 50)
	if pageSize <= 0 {
		pageSize = 50
	}
	pagina, err := h.Cliente.ComCookies(r.Cookies()).BuscarTodasEmpresas(r.Context(), pageSize)
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar todas as empresas")
		return
	}
	responderJSON(w, http.StatusOK, pagina)
}

// Snapshot devolve o último agregado comitado pelo atualizador, sem tocar
// nos upstreams.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	responderJSON(w, http.StatusOK, h.Atualizador.Snapshot())
}

// BuscarPorID devolve os detalhes de uma empresa; 404 quando não existe.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Cliente.ComCookies(r.Cookies()).BuscarPorID(r.Context(), id)
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar empresa")
		return
	}
	if e == nil {
		http.Error(w, "empresa não encontrada", http.StatusNotFound)
		return
	}
	responderJSON(w, http.StatusOK, e)
}

// BuscarPorNome devolve a empresa de nome exato; 404 quando não existe.
func (h *Handler) BuscarPorNome(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("nome")
	if nome == "" {
		http.Error(w, "parâmetro nome é obrigatório", http.StatusBadRequest)
		return
	}
	e, err := h.Cliente.ComCookies(r.Cookies()).BuscarPorNome(r.Context(), nome)
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar empresa")
		return
	}
	if e == nil {
		http.Error(w, "empresa não encontrada", http.StatusNotFound)
		return
	}
	responderJSON(w, http.StatusOK, e)
}

type criarPorNomeRequest struct {
	NomeEmpresa string `json:"nomeEmpresa"`
}

// CriarPorNome repassa a criação ao upstream, mapeando 409 e 404 para
// mensagens próprias da UI.
func (h *Handler) CriarPorNome(w http.ResponseWriter, r *http.Request) {
	var req criarPorNomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NomeEmpresa == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	criada, err := h.Cliente.ComCookies(r.Cookies()).CriarPorNome(r.Context(), req.NomeEmpresa)
	if errors.Is(err, ErrJaCadastrada) {
		http.Error(w, ErrJaCadastrada.Error(), http.StatusConflict)
		return
	}
	if errors.Is(err, ErrNenhumaEncontrada) {
		http.Error(w, ErrNenhumaEncontrada.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao criar empresa")
		return
	}

	var id int64
	if criada.ID != nil {
		id = *criada.ID
	}
	h.Barramento.Publicar(notificacao.Evento{Entidade: notificacao.EntidadeEmpresa, Acao: notificacao.AcaoCriar, ID: id})
	responderJSON(w, http.StatusCreated, criada)
}

type alterarSituacaoRequest struct {
	NovoStatus   string  `json:"novoStatus"`
	NovaSituacao string  `json:"novaSituacao"`
	NovaMensagem *string `json:"novaMensagem"`
}

// AlterarSituacao grava status/situação/mensagem escolhidos pela equipe.
func (h *Handler) AlterarSituacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req alterarSituacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Cliente.ComCookies(r.Cookies()).AlterarSituacao(r.Context(), id, req.NovoStatus, req.NovaSituacao, req.NovaMensagem); err != nil {
		httpclient.ResponderFalha(w, err, "erro ao alterar situação")
		return
	}
	h.Barramento.Publicar(notificacao.Evento{Entidade: notificacao.EntidadeEmpresa, Acao: notificacao.AcaoAtualizar, ID: id})
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("situação atualizada com sucesso"))
}

// Deletar exclui a empresa no upstream.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Cliente.ComCookies(r.Cookies()).Deletar(r.Context(), id); err != nil {
		httpclient.ResponderFalha(w, err, "erro ao excluir empresa")
		return
	}
	h.Barramento.Publicar(notificacao.Evento{Entidade: notificacao.EntidadeEmpresa, Acao: notificacao.AcaoExcluir, ID: id})
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("empresa excluída com sucesso"))
}
