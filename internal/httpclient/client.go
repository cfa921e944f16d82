package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNaoAutenticado indica 401 em chamada autenticada: o usuário precisa
// logar de novo, não é uma falha genérica.
var ErrNaoAutenticado = errors.New("sessão expirada, faça login novamente")

// ErroHTTP representa uma resposta não-2xx. O corpo é capturado em
// best-effort para diagnóstico.
type ErroHTTP struct {
	Status int
	Corpo  string
}

func (e *ErroHTTP) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Corpo)
}

// StatusDe extrai o status HTTP de um erro, ou 0 se não for ErroHTTP.
func StatusDe(err error) int {
	var eh *ErroHTTP
	if errors.As(err, &eh) {
		return eh.Status
	}
	return 0
}

// ResponderFalha traduz o erro de upstream para a resposta ao dashboard:
// 401 pede reautenticação, o resto vira 502 com a mensagem dada.
func ResponderFalha(w http.ResponseWriter, err error, mensagem string) {
	if errors.Is(err, ErrNaoAutenticado) {
		http.Error(w, ErrNaoAutenticado.Error(), http.StatusUnauthorized)
		return
	}
	http.Error(w, mensagem, http.StatusBadGateway)
}

// Client é o wrapper de chamadas aos serviços upstream. Centraliza base URL,
// headers, cookies de credencial e o mapeamento não-2xx -> ErroHTTP.
type Client struct {
	Base string
	HTTP *http.Client
	Log  *logrus.Entry

	// Cookies encaminhados nas chamadas autenticadas (sessão do dashboard).
	Cookies []*http.Cookie
}

func New(base string, log *logrus.Entry) *Client {
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
		Log:  log,
	}
}

// ComCookies retorna uma cópia rasa do client que envia os cookies informados.
func (c *Client) ComCookies(cookies []*http.Cookie) *Client {
	clone := *c
	clone.Cookies = cookies
	return &clone
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.Base + path
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	for _, ck := range c.Cookies {
		req.AddCookie(ck)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		// falha de transporte: a requisição nem chegou (ou a resposta nunca veio)
		return nil, fmt.Errorf("falha de rede em %s: %w", req.URL.Path, err)
	}
	return resp, nil
}

// lerFalha consome o corpo de uma resposta não-2xx e devolve o erro tipado.
func (c *Client) lerFalha(resp *http.Response) error {
	defer resp.Body.Close()
	corpo, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w (%s)", ErrNaoAutenticado, resp.Request.URL.Path)
	}
	if c.Log != nil {
		c.Log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"path":   resp.Request.URL.Path,
		}).Warn("resposta upstream não-2xx")
	}
	return &ErroHTTP{Status: resp.StatusCode, Corpo: strings.TrimSpace(string(corpo))}
}

// Get faz GET e devolve a resposta crua. O caller fecha o Body.
// Respostas não-2xx viram ErroHTTP (não há retry automático).
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.lerFalha(resp)
	}
	return resp, nil
}

// GetJSON faz GET e decodifica o corpo JSON em out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// EnviarJSON faz POST/PUT/PATCH com corpo JSON e decodifica a resposta em out
// (out pode ser nil quando o corpo não interessa).
func (c *Client) EnviarJSON(ctx context.Context, metodo, path string, corpo, out any) error {
	var buf bytes.Buffer
	if corpo != nil {
		if err := json.NewEncoder(&buf).Encode(corpo); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, metodo, c.url(path), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.lerFalha(resp)
	}
	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Delete faz DELETE e descarta o corpo (DELETE upstream costuma voltar vazio).
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(path), nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.lerFalha(resp)
	}
	resp.Body.Close()
	return nil
}

// Arquivo é uma parte de arquivo em requisição multipart.
type Arquivo struct {
	Campo    string
	Nome     string
	Conteudo []byte
}

// EnviarMultipart monta um corpo multipart/form-data com campos de texto e
// arquivos e decodifica a resposta JSON em out (ou descarta se nil).
func (c *Client) EnviarMultipart(ctx context.Context, metodo, path string, campos map[string]string, arquivos []Arquivo, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for nome, valor := range campos {
		if err := mw.WriteField(nome, valor); err != nil {
			return err
		}
	}
	for _, a := range arquivos {
		fw, err := mw.CreateFormFile(a.Campo, a.Nome)
		if err != nil {
			return err
		}
		if _, err := fw.Write(a.Conteudo); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.url(path), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.lerFalha(resp)
	}
	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
