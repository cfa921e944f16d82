package unidade

import (
	"encoding/json"
	"net/http"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

type Handler struct {
	Cliente *Cliente
}

func NewHandler(cliente *Cliente) *Handler {
	return &Handler{Cliente: cliente}
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	nomes, err := h.Cliente.ComCookies(r.Cookies()).ListarNomes(r.Context())
	if err != nil {
		httpclient.ResponderFalha(w, err, "não foi possível carregar as unidades")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nomes)
}

func (h *Handler) BuscarPorNome(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("nome")
	if nome == "" {
		http.Error(w, "parâmetro nome é obrigatório", http.StatusBadRequest)
		return
	}
	u, err := h.Cliente.ComCookies(r.Cookies()).BuscarPorNome(r.Context(), nome)
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar detalhes da unidade")
		return
	}
	if u == nil {
		http.Error(w, "unidade não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}
