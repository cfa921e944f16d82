package historico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// Handler expõe o histórico de auditoria para o dashboard.
type Handler struct {
	Cliente *Cliente
}

func NewHandler(cliente *Cliente) *Handler {
	return &Handler{Cliente: cliente}
}

func lerInt(r *http.Request, chave string, padrao int) int {
	if v := r.URL.Query().Get(chave); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return padrao
}

// Listar devolve uma página do histórico com as ações já classificadas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pagina, err := h.Cliente.ComCookies(r.Cookies()).Listar(r.Context(), lerInt(r, "pageNumber", 0), lerInt(r, "pageSize", 50))
	if err != nil {
		httpclient.ResponderFalha(w, err, "erro ao buscar histórico")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pagina)
}
