package empresa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapearEmpresaCamposBasicos(t *testing.T) {
	raw := RawPayload{
		"id":          float64(10),
		"customerId":  float64(77),
		"nomeEmpresa": "Padaria Central LTDA",
		"cnpj":        "12345678000199",
		"email":       "contato@padaria.com.br",
		"telefone":    "11987654321",
		"situacao":    "ATIVA",
	}
	e := MapearEmpresa(raw)

	require.NotNil(t, e.ID)
	assert.EqualValues(t, 10, *e.ID)
	require.NotNil(t, e.CustomerID)
	assert.EqualValues(t, 77, *e.CustomerID)
	assert.Equal(t, "Padaria Central LTDA", *e.NomeEmpresa)
	assert.Equal(t, "12345678000199", *e.CNPJ)
	assert.Equal(t, "contato@padaria.com.br", *e.Email)
	assert.Equal(t, "11987654321", *e.Telefone)
	assert.Equal(t, "ATIVA", *e.Situacao)
	assert.Nil(t, e.StatusEmpresa)
	assert.Equal(t, raw, e.Raw, "payload original fica anexado intacto")
}

func TestMapearEmpresaTotalidade(t *testing.T) {
	// nenhum destes pode causar panic; campo irreconhecível vira nil
	casos := []RawPayload{
		nil,
		{},
		{"id": "não-é-número", "email": float64(5), "cnpj": true},
		{"legalPerson": "string-em-vez-de-objeto"},
		{"email": []any{float64(1), float64(2)}},
		{"telefone": []any{}},
		{"lixo": map[string]any{"profundo": []any{map[string]any{"x": nil}}}},
	}
	for _, raw := range casos {
		e := MapearEmpresa(raw)
		assert.Nil(t, e.ID)
		assert.Nil(t, e.NomeEmpresa)
		assert.Nil(t, e.CNPJ)
		assert.Nil(t, e.Email)
		assert.Nil(t, e.Telefone)
		assert.NotNil(t, e.Raw)
	}
}

func TestMapearEmpresaIDFallback(t *testing.T) {
	// só customerId presente: os dois ids resolvem para o mesmo valor
	soCustomer := MapearEmpresa(RawPayload{"customerId": float64(42)})
	require.NotNil(t, soCustomer.ID)
	assert.EqualValues(t, 42, *soCustomer.ID)
	assert.EqualValues(t, 42, *soCustomer.CustomerID)

	// dois registros com o mesmo id upstream normalizam para o mesmo id canônico
	a := MapearEmpresa(RawPayload{"id": float64(5), "nomeEmpresa": "A"})
	b := MapearEmpresa(RawPayload{"id": float64(5), "nome": "B"})
	assert.Equal(t, *a.ID, *b.ID)
}

func TestMapearEmpresaPrioridadeNome(t *testing.T) {
	e := MapearEmpresa(RawPayload{"nomeEmpresa": "X", "name": "Y", "nome": "Z"})
	assert.Equal(t, "X", *e.NomeEmpresa)

	e = MapearEmpresa(RawPayload{"name": "Y", "nome": "Z"})
	assert.Equal(t, "Y", *e.NomeEmpresa)

	e = MapearEmpresa(RawPayload{"nome": "Z"})
	assert.Equal(t, "Z", *e.NomeEmpresa)
}

func TestResolverEmailPrioridade(t *testing.T) {
	// string direta ganha de lista
	e := MapearEmpresa(RawPayload{"email": "direto@x.com", "emails": []any{"lista@x.com"}})
	assert.Equal(t, "direto@x.com", *e.Email)

	// lista em `email`
	e = MapearEmpresa(RawPayload{"email": []any{"a@x.com", "b@x.com"}})
	assert.Equal(t, "a@x.com", *e.Email)

	// lista em `emails`
	e = MapearEmpresa(RawPayload{"emails": []any{"c@x.com"}})
	assert.Equal(t, "c@x.com", *e.Email)

	// texto de emailsMessage por último
	e = MapearEmpresa(RawPayload{"emailsMessage": "sem email cadastrado"})
	assert.Equal(t, "sem email cadastrado", *e.Email)
}

func TestResolverTelefonePrioridade(t *testing.T) {
	e := MapearEmpresa(RawPayload{"telefone": []any{"1133334444"}, "phone": "999"})
	assert.Equal(t, "1133334444", *e.Telefone)

	e = MapearEmpresa(RawPayload{"phone": []any{"11999998888"}})
	assert.Equal(t, "11999998888", *e.Telefone)
}

func TestResolverCNPJAninhado(t *testing.T) {
	e := MapearEmpresa(RawPayload{"legalPerson": map[string]any{"cnpj": "11222333000144"}})
	assert.Equal(t, "11222333000144", *e.CNPJ)
}

func TestInterpretarOpcional(t *testing.T) {
	v, ok := InterpretarOpcional(map[string]any{"value": map[string]any{"id": float64(1)}}).Valor()
	assert.True(t, ok)
	assert.NotNil(t, v)

	_, ok = InterpretarOpcional(map[string]any{"present": false}).Valor()
	assert.False(t, ok)

	_, ok = InterpretarOpcional(map[string]any{"empty": true}).Valor()
	assert.False(t, ok)

	_, ok = InterpretarOpcional(nil).Valor()
	assert.False(t, ok)

	// objeto sem embrulho passa direto
	v, ok = InterpretarOpcional(map[string]any{"id": float64(9)}).Valor()
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"id": float64(9)}, v)
}
