package aditivo

// CriarRequest são os campos do aditivo contratual. Unidade e data de
// início são obrigatórios: a validação local barra o envio antes de
// qualquer chamada de rede.
type CriarRequest struct {
	UnidadeNome     string `json:"unidadeNome" validate:"required"`
	UnidadeCnpj     string `json:"unidadeCnpj"`
	UnidadeEndereco string `json:"unidadeEndereco"`

	PessoaFisicaNome     string `json:"pessoaFisicaNome"`
	PessoaFisicaCpf      string `json:"pessoaFisicaCpf"`
	PessoaFisicaEndereco string `json:"pessoaFisicaEndereco"`

	DataInicioContrato string `json:"dataInicioContrato" validate:"required"`

	PessoaJuridicaNome     string `json:"pessoaJuridicaNome"`
	PessoaJuridicaCnpj     string `json:"pessoaJuridicaCnpj"`
	PessoaJuridicaEndereco string `json:"pessoaJuridicaEndereco"`
}

// Resposta é o resultado da criação, com a URL de download já absoluta.
type Resposta struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Mensagem    string `json:"mensagem"`
	NomeArquivo string `json:"nomeArquivo"`
	URLDownload string `json:"urlDownload"`
}
