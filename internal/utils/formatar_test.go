package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatarCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatarCPF("12345678909"))
	assert.Equal(t, "123.456.789-09", FormatarCPF("123.456.789-09"), "entrada já formatada se mantém estável")
	assert.Equal(t, "1234567", FormatarCPF("1234567"), "tamanho errado volta como veio")
	assert.Equal(t, "", FormatarCPF(""))
}

func TestFormatarCNPJ(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-95", FormatarCNPJ("12345678000195"))
	assert.Equal(t, "12345678", FormatarCNPJ("12345678"))
}

func TestFormatarDocumentoEscolhePeloTamanho(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatarDocumento("12345678909"))
	assert.Equal(t, "12.345.678/0001-95", FormatarDocumento("12345678000195"))
	assert.Equal(t, "abc", FormatarDocumento("abc"))
}

func TestFormatarTelefone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", FormatarTelefone("11987654321"))
	assert.Equal(t, "(11) 3456-7890", FormatarTelefone("1134567890"))
	assert.Equal(t, "190", FormatarTelefone("190"), "número curto volta como veio")
	assert.Equal(t, "", FormatarTelefone(""))
}
