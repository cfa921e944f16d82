package utils

import "strings"

// apenasDigitos remove tudo que não é número.
func apenasDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatarCPF formata 11 dígitos como 000.000.000-00.
// Entrada fora do padrão volta como veio — formatação, não validação.
func FormatarCPF(cpf string) string {
	d := apenasDigitos(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// FormatarCNPJ formata 14 dígitos como 00.000.000/0000-00.
func FormatarCNPJ(cnpj string) string {
	d := apenasDigitos(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}

// FormatarDocumento escolhe CPF ou CNPJ pelo tamanho.
func FormatarDocumento(doc string) string {
	switch len(apenasDigitos(doc)) {
	case 11:
		return FormatarCPF(doc)
	case 14:
		return FormatarCNPJ(doc)
	default:
		return doc
	}
}

// FormatarTelefone formata celular (11 dígitos) como (XX) XXXXX-XXXX
// e fixo (10 dígitos) como (XX) XXXX-XXXX.
func FormatarTelefone(telefone string) string {
	d := apenasDigitos(telefone)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return telefone
	}
}
