package correspondencia

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
)

// Handler expõe as operações de correspondência para o dashboard.
type Handler struct {
	Cliente     *Cliente
	Avisos      *notificacao.Cliente
	Atualizador *Atualizador
	Barramento  *notificacao.Barramento
}

func NewHandler(cliente *Cliente, avisos *notificacao.Cliente, atualizador *Atualizador, barramento *notificacao.Barramento) *Handler {
	return &Handler{Cliente: cliente, Avisos: avisos, Atualizador: atualizador, Barramento: barramento}
}

// Snapshot devolve a última primeira página comitada pelo atualizador,
// sem tocar no upstream.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	responderJSON(w, http.StatusOK, h.Atualizador.Snapshot())
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

// lerAnexos extrai as partes de arquivo de uma requisição multipart do
// dashboard, no campo informado.
func lerAnexos(r *http.Request, campo string) ([]httpclient.Arquivo, error) {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, nil
	}
	var anexos []httpclient.Arquivo
	for _, cabecalho := range r.MultipartForm.File[campo] {
		f, err := cabecalho.Open()
		if err != nil {
			return nil, err
		}
		conteudo, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		anexos = append(anexos, httpclient.Arquivo{Campo: campo, Nome: cabecalho.Filename, Conteudo: conteudo})
	}
	return anexos, nil
}

// Listar devolve uma página de correspondências, com termo opcional.
// Referências de foto saem como URL absoluta do upstream, prontas para a UI.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pagina, err := h.Cliente.ComCookies(r.Cookies()).Listar(r.Context(), lerInt(r, "pageNumber", 0), lerInt(r, "pageSize", 50), r.URL.Query().Get("termo"))
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar correspondências")
		return
	}
	for i, corresp := range pagina.Content {
		ref := corresp.FotoCorrespondencia
		if ref == nil || *ref == "" || strings.HasPrefix(*ref, "http") {
			continue
		}
		u := h.Cliente.URLArquivo(*ref)
		pagina.Content[i].FotoCorrespondencia = &u
	}
	responderJSON(w, http.StatusOK, pagina)
}

// Criar registra uma correspondência nova. Com foto vem multipart, sem
// foto vem JSON puro — os dois caminhos do upstream são preservados.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var criada Correspondencia
	var err error
	cliente := h.Cliente.ComCookies(r.Cookies())

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
		fotos, errFoto := lerAnexos(r, "foto")
		if errFoto != nil || len(fotos) == 0 {
			http.Error(w, "foto inválida", http.StatusBadRequest)
			return
		}
		criada, err = cliente.ProcessarComFoto(r.Context(),
			r.FormValue("nomeEmpresaConexa"), r.FormValue("remetente"), fotos[0])
	} else {
		var req struct {
			NomeEmpresaConexa string `json:"nomeEmpresaConexa"`
			Remetente         string `json:"remetente"`
		}
		if errDec := json.NewDecoder(r.Body).Decode(&req); errDec != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
		criada, err = cliente.Processar(r.Context(), req.NomeEmpresaConexa, req.Remetente)
	}

	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao processar correspondência")
		return
	}
	h.Barramento.Publicar(notificacao.Evento{
		Entidade: notificacao.EntidadeCorrespondencia,
		Acao:     notificacao.AcaoCriar,
		ID:       criada.ID,
	})
	responderJSON(w, http.StatusCreated, criada)
}

// AlterarStatus recebe o PATCH multipart do dashboard (parte `dados` com o
// JSON da mudança e anexos opcionais) e repassa ao upstream.
func (h *Handler) AlterarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	var mudanca MudancaStatus
	if err := json.Unmarshal([]byte(r.FormValue("dados")), &mudanca); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	anexos, err := lerAnexos(r, "anexos")
	if err != nil {
		http.Error(w, "anexo inválido", http.StatusBadRequest)
		return
	}

	if err := h.Cliente.ComCookies(r.Cookies()).AlterarStatus(r.Context(), id, mudanca, anexos); err != nil {
		httpclient.ResponderFalha(w, err, "erro ao atualizar correspondência")
		return
	}
	h.Barramento.Publicar(notificacao.Evento{
		Entidade: notificacao.EntidadeCorrespondencia,
		Acao:     notificacao.AcaoAtualizar,
		ID:       id,
	})
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("correspondência atualizada com sucesso"))
}

// EnviarAviso dispara o email informativo à empresa, com ou sem anexos.
func (h *Handler) EnviarAviso(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
		anexos, err := lerAnexos(r, "anexos")
		if err != nil {
			http.Error(w, "anexo inválido", http.StatusBadRequest)
			return
		}
		if err := h.Avisos.ComCookies(r.Cookies()).EnviarAvisoComAnexos(r.Context(), r.FormValue("nomeEmpresaConexa"), anexos); err != nil {
			httpclient.ResponderFalha(w, err, "erro ao enviar aviso")
			return
		}
	} else {
		var req struct {
			NomeEmpresaConexa string `json:"nomeEmpresaConexa"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NomeEmpresaConexa == "" {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
		if err := h.Avisos.ComCookies(r.Cookies()).EnviarAviso(r.Context(), req.NomeEmpresaConexa); err != nil {
			httpclient.ResponderFalha(w, err, "erro ao enviar aviso")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("aviso enviado com sucesso"))
}

// Apagar exclui a correspondência.
func (h *Handler) Apagar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Cliente.ComCookies(r.Cookies()).Apagar(r.Context(), id); err != nil {
		httpclient.ResponderFalha(w, err, "erro ao apagar a correspondência")
		return
	}
	h.Barramento.Publicar(notificacao.Evento{
		Entidade: notificacao.EntidadeCorrespondencia,
		Acao:     notificacao.AcaoExcluir,
		ID:       id,
	})
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("correspondência excluída com sucesso"))
}
