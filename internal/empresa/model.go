package empresa

// RawPayload é o registro cru vindo dos upstreams, sem schema. Os dois
// sistemas (Athena e Conexa) divergem em chaves e formatos, então o
// payload original fica sempre anexado à entidade normalizada.
type RawPayload = map[string]any

// Empresa é a forma canônica em que todo registro upstream é normalizado.
// Campo ausente ou com tipo errado vira nil, nunca erro.
type Empresa struct {
	ID            *int64  `json:"id"`
	CustomerID    *int64  `json:"customerId"`
	NomeEmpresa   *string `json:"nomeEmpresa"`
	CNPJ          *string `json:"cnpj"`
	Email         *string `json:"email"`
	Telefone      *string `json:"telefone"`
	StatusEmpresa *string `json:"statusEmpresa"`
	Situacao      *string `json:"situacao"`
	Mensagem      *string `json:"mensagem"`

	// Payload original intacto, para campos que a normalização não antecipou.
	Raw RawPayload `json:"raw,omitempty"`
}

// Pagina é o envelope canônico de paginação entregue às visões,
// independente de qual formato upstream o produziu.
type Pagina struct {
	Content       []Empresa `json:"content"`
	PageNumber    int       `json:"pageNumber"`
	PageSize      int       `json:"pageSize"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	LastPage      bool      `json:"lastPage"`
}
