package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/utils"
)

type Handler struct {
	Cliente *Cliente
	Segredo string
	// fallback local opcional quando o serviço de autenticação está fora
	AdminEmail     string
	AdminSenhaHash string
	Log            *logrus.Entry
}

func NewHandler(cliente *Cliente, segredo, adminEmail, adminSenhaHash string, log *logrus.Entry) *Handler {
	return &Handler{
		Cliente:        cliente,
		Segredo:        segredo,
		AdminEmail:     adminEmail,
		AdminSenhaHash: adminSenhaHash,
		Log:            log,
	}
}

func (h *Handler) fallbackLocal(cred Credenciais) (Usuario, bool) {
	if h.AdminEmail == "" || h.AdminSenhaHash == "" {
		return Usuario{}, false
	}
	if !strings.EqualFold(cred.Email, h.AdminEmail) {
		return Usuario{}, false
	}
	if !utils.VerificarSenha(h.AdminSenhaHash, cred.Senha) {
		return Usuario{}, false
	}
	return Usuario{Email: h.AdminEmail, Nome: "Administrador"}, true
}

// Login autentica no serviço upstream e grava o cookie de sessão. Se o
// upstream estiver inalcançável, tenta o administrador local.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cred Credenciais
	if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if cred.Email == "" || cred.Senha == "" {
		http.Error(w, "informe e-mail e senha", http.StatusBadRequest)
		return
	}

	usuario, err := h.Cliente.Login(r.Context(), cred)
	if err != nil {
		if errors.Is(err, ErrCredenciaisInvalidas) {
			http.Error(w, ErrCredenciaisInvalidas.Error(), http.StatusUnauthorized)
			return
		}
		// upstream fora do ar: tenta o administrador local
		local, ok := h.fallbackLocal(cred)
		if !ok {
			h.Log.WithError(err).Warn("serviço de autenticação inalcançável e sem fallback local")
			http.Error(w, "serviço de autenticação indisponível", http.StatusBadGateway)
			return
		}
		h.Log.WithField("email", local.Email).Info("login pelo administrador local")
		usuario = local
	}

	token, err := GerarTokenSessao(h.Segredo, usuario.Email, usuario.Nome)
	if err != nil {
		http.Error(w, "erro ao emitir sessão", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     NomeCookieSessao,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessaoTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuario)
}

// Me devolve o usuário da sessão corrente.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(CtxEmail).(string)
	nome, _ := r.Context().Value(CtxNome).(string)
	if email == "" {
		http.Error(w, "Sessão ausente", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Usuario{Email: email, Nome: nome})
}

// Logout apaga o cookie de sessão.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     NomeCookieSessao,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
