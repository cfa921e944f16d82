package historico

import "time"

// Entidades auditadas.
const (
	EntidadeEmpresa         = "COMPANY"
	EntidadeCorrespondencia = "CORRESPONDENCE"
)

// Classificações normalizadas de ação, derivadas por heurística (ver
// classificador.go). Só para filtro e exibição — nunca voltam ao upstream.
const (
	AcaoCriar     = "CRIAR"
	AcaoAtualizar = "ATUALIZAR"
	AcaoExcluir   = "EXCLUIR"
	AcaoOutra     = "OUTRA"
)

// Registro é uma entrada de auditoria vinda do upstream, já com a
// classificação normalizada calculada aqui.
type Registro struct {
	ID            int64     `json:"id"`
	DataHora      time.Time `json:"dataHora"`
	Entidade      string    `json:"entidade"`
	EntidadeID    int64     `json:"entidadeId"`
	AcaoRealizada string    `json:"acaoRealizada"` // rótulo cru do upstream
	Detalhe       string    `json:"detalhe"`
	// AcaoNormalizada é melhor-esforço sobre texto livre; erro de
	// classificação é aceitável e não-fatal.
	AcaoNormalizada string `json:"acaoNormalizada"`
}

// Pagina é o envelope paginado do histórico.
type Pagina struct {
	Content    []Registro `json:"content"`
	PageNumber int        `json:"pageNumber"`
	TotalPages int        `json:"totalPages"`
}
