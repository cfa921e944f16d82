package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxEmail ctxKey = "email"
	CtxNome  ctxKey = "nome"
)

// NomeCookieSessao é o cookie emitido no login e conferido em toda rota.
const NomeCookieSessao = "sessao"

// tokenDaRequisicao aceita o cookie de sessão ou Authorization: Bearer.
func tokenDaRequisicao(r *http.Request) string {
	if c, err := r.Cookie(NomeCookieSessao); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func MiddlewareAutenticacao(segredo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			raw := tokenDaRequisicao(r)
			if raw == "" {
				http.Error(w, "Sessão ausente", http.StatusUnauthorized)
				return
			}
			claims, err := ValidarTokenSessao(segredo, raw)
			if err != nil {
				http.Error(w, "Sessão inválida", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), CtxEmail, claims.Email)
			ctx = context.WithValue(ctx, CtxNome, claims.Nome)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
