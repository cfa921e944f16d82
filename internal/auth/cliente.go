package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
)

// ErrCredenciaisInvalidas cobre qualquer recusa do serviço de autenticação.
var ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")

type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type Usuario struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

// Cliente delega o login ao serviço de autenticação.
type Cliente struct {
	http *httpclient.Client
}

func NovoCliente(http *httpclient.Client) *Cliente {
	return &Cliente{http: http}
}

// Login devolve os dados do usuário autenticado. Recusa upstream vira
// ErrCredenciaisInvalidas; falha de transporte propaga para permitir o
// fallback local.
func (c *Cliente) Login(ctx context.Context, cred Credenciais) (Usuario, error) {
	var usuario Usuario
	err := c.http.EnviarJSON(ctx, http.MethodPost, "/auth/login", cred, &usuario)
	if err != nil {
		if status := httpclient.StatusDe(err); status != 0 || errors.Is(err, httpclient.ErrNaoAutenticado) {
			return Usuario{}, ErrCredenciaisInvalidas
		}
		return Usuario{}, err
	}
	if usuario.Email == "" {
		usuario.Email = cred.Email
	}
	return usuario, nil
}
