package aditivo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

type Handler struct {
	Cliente *Cliente
}

func NewHandler(cliente *Cliente) *Handler {
	return &Handler{Cliente: cliente}
}

// Criar gera o aditivo contratual da unidade informada.
// POST /aditivos?empresaId=123
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var empresaID int64
	fmt.Sscanf(r.URL.Query().Get("empresaId"), "%d", &empresaID)

	resposta, err := h.Cliente.ComCookies(r.Cookies()).Criar(r.Context(), req, empresaID)
	if err != nil {
		if errors.Is(err, ErrValidacao) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if status := httpclient.StatusDe(err); status != 0 {
			http.Error(w, err.Error(), status)
			return
		}
		httpclient.ResponderFalha(w, err, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// Baixar repassa o documento gerado para o chamador, preservando o nome
// do arquivo vindo do serviço de aditivos.
// GET /aditivos/download?url=...&nome=...
func (h *Handler) Baixar(w http.ResponseWriter, r *http.Request) {
	urlDownload := r.URL.Query().Get("url")
	if urlDownload == "" {
		http.Error(w, "parâmetro url é obrigatório", http.StatusBadRequest)
		return
	}
	nomePadrao := r.URL.Query().Get("nome")
	if nomePadrao == "" {
		nomePadrao = "aditivo.docx"
	}

	cliente := h.Cliente.ComCookies(r.Cookies())
	doc, err := cliente.Baixar(r.Context(), cliente.ResolverURLDownload(urlDownload, ""), nomePadrao)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer doc.Conteudo.Close()

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.NomeArquivo))
	io.Copy(w, doc.Conteudo)
}
