package correspondencia

// Status possíveis de uma correspondência. O gateway nunca valida
// transição: grava o alvo escolhido pela equipe e o upstream decide.
const (
	StatusAnalise     = "ANALISE"
	StatusAvisada     = "AVISADA"
	StatusDevolvida   = "DEVOLVIDA"
	StatusUsoIndevido = "USO_INDEVIDO"
	StatusRecebido    = "RECEBIDO"
)

// Correspondencia é o registro como vem do upstream.
type Correspondencia struct {
	ID                  int64   `json:"id"`
	Remetente           string  `json:"remetente"`
	NomeEmpresaConexa   string  `json:"nomeEmpresaConexa"`
	StatusCorresp       string  `json:"statusCorresp"`
	DataRecebimento     string  `json:"dataRecebimento"`     // "YYYY-MM-DD"
	DataAvisoConexa     *string `json:"dataAvisoConexa"`     // idem, ou null
	FotoCorrespondencia *string `json:"fotoCorrespondencia"` // referência de arquivo, ou null
}

// Pagina é o envelope paginado de correspondências.
type Pagina struct {
	Content       []Correspondencia `json:"content"`
	PageNumber    int               `json:"pageNumber"`
	PageSize      int               `json:"pageSize"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	LastPage      bool              `json:"lastPage"`
}

// MudancaStatus é a parte JSON do PATCH multipart de mudança de status.
// Enviar fica true quando há anexos ou quando o aviso por email foi pedido.
type MudancaStatus struct {
	Status      string `json:"status"`
	Motivo      string `json:"motivo"`
	AlteradoPor string `json:"alteradoPor"`
	Enviar      bool   `json:"enviar"`
}
