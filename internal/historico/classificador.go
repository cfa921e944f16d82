package historico

import "strings"

var (
	palavrasExcluir   = []string{"exclu", "remov", "delet", "apag"}
	palavrasAtualizar = []string{"atualiz", "alterad", "status alterad", "status/situ"}
	palavrasCriar     = []string{"criad", "criou", "recebiment", "empresa criada", "recebimento de correspondência", "aviso"}
)

func contemAlgum(texto string, palavras []string) bool {
	for _, p := range palavras {
		if strings.Contains(texto, p) {
			return true
		}
	}
	return false
}

// ClassificarAcao deriva a classificação normalizada a partir do rótulo
// cru e do detalhe, por busca de substring em ordem de prioridade:
// EXCLUIR ganha de ATUALIZAR que ganha de CRIAR. Um detalhe editado que
// mencione criação e exclusão classifica como EXCLUIR de propósito.
// Heurística sobre texto livre: serve para filtro de exibição, nunca
// para controle de acesso ou lógica financeira.
func ClassificarAcao(acaoCrua, detalhe string) string {
	texto := strings.ToLower(acaoCrua + " " + detalhe)

	switch {
	case contemAlgum(texto, palavrasExcluir):
		return AcaoExcluir
	case contemAlgum(texto, palavrasAtualizar):
		return AcaoAtualizar
	case contemAlgum(texto, palavrasCriar):
		return AcaoCriar
	}

	maiuscula := strings.ToUpper(acaoCrua)
	if maiuscula == AcaoCriar || maiuscula == AcaoAtualizar || maiuscula == AcaoExcluir {
		return maiuscula
	}
	if acaoCrua == "" {
		return AcaoOutra
	}
	return acaoCrua
}
