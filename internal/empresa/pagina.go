package empresa

// Detecção dos dois formatos de envelope de página conhecidos e a
// matemática de paginação derivada. Classificação pura, sem coerção:
// campo opcional presente com tipo errado rejeita o formato inteiro
// (fail closed) e o caller cai para o outro formato ou página vazia.

type metaPagina struct {
	PageNumber    *int
	PageSize      *int
	TotalElements *int
	TotalPages    *int
	LastPage      *bool
}

// intOpcional devolve (valor, true) se a chave está ausente ou é número;
// (nil, false) se presente com tipo errado.
func intOpcional(m map[string]any, chave string) (*int, bool) {
	v, existe := m[chave]
	if !existe {
		return nil, true
	}
	f, ok := v.(float64)
	if !ok {
		return nil, false
	}
	n := int(f)
	return &n, true
}

func boolOpcional(m map[string]any, chave string) (*bool, bool) {
	v, existe := m[chave]
	if !existe {
		return nil, true
	}
	b, ok := v.(bool)
	if !ok {
		return nil, false
	}
	return &b, true
}

func lerMeta(m map[string]any) (metaPagina, bool) {
	var meta metaPagina
	var ok bool
	if meta.PageNumber, ok = intOpcional(m, "pageNumber"); !ok {
		return meta, false
	}
	if meta.PageSize, ok = intOpcional(m, "pageSize"); !ok {
		return meta, false
	}
	if meta.TotalElements, ok = intOpcional(m, "totalElements"); !ok {
		return meta, false
	}
	if meta.TotalPages, ok = intOpcional(m, "totalPages"); !ok {
		return meta, false
	}
	if meta.LastPage, ok = boolOpcional(m, "lastPage"); !ok {
		return meta, false
	}
	return meta, true
}

func lerListaRegistros(v any) ([]RawPayload, bool) {
	lista, ok := v.([]any)
	if !ok {
		return nil, false
	}
	registros := make([]RawPayload, 0, len(lista))
	for _, item := range lista {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		registros = append(registros, m)
	}
	return registros, true
}

// DetectarPaginaAthena reconhece o formato primário: objeto com `content`
// obrigatório (lista de objetos) e metadados opcionais tipados.
func DetectarPaginaAthena(payload any) ([]RawPayload, metaPagina, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, metaPagina{}, false
	}
	registros, ok := lerListaRegistros(m["content"])
	if !ok {
		return nil, metaPagina{}, false
	}
	meta, ok := lerMeta(m)
	if !ok {
		return nil, metaPagina{}, false
	}
	return registros, meta, true
}

// DetectarPaginaConexa reconhece o formato secundário: `data` opcional
// (lista de objetos, vazio quando ausente) e os mesmos metadados.
func DetectarPaginaConexa(payload any) ([]RawPayload, metaPagina, bool) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, metaPagina{}, false
	}
	registros := []RawPayload{}
	if v, existe := m["data"]; existe {
		var ok bool
		registros, ok = lerListaRegistros(v)
		if !ok {
			return nil, metaPagina{}, false
		}
	}
	meta, ok := lerMeta(m)
	if !ok {
		return nil, metaPagina{}, false
	}
	return registros, meta, true
}

// CalcularTotalPaginas deriva totalPages de totalElements/pageSize:
// ceil da divisão, no mínimo 1 quando há elementos, 0 quando não há.
func CalcularTotalPaginas(totalElements, pageSize int) int {
	if pageSize <= 0 {
		if totalElements > 0 {
			return 1
		}
		return 0
	}
	calculado := (totalElements + pageSize - 1) / pageSize
	if calculado > 0 {
		return calculado
	}
	if totalElements > 0 {
		return 1
	}
	return 0
}

// montarPagina normaliza os registros e completa o envelope com os
// metadados informados pelo upstream, caindo nos derivados quando ausentes.
func montarPagina(registros []RawPayload, pageSizePadrao int, meta metaPagina) Pagina {
	empresas := make([]Empresa, 0, len(registros))
	for _, r := range registros {
		empresas = append(empresas, MapearEmpresa(r))
	}

	pageSize := pageSizePadrao
	if meta.PageSize != nil {
		pageSize = *meta.PageSize
	}
	totalElements := len(empresas)
	if meta.TotalElements != nil {
		totalElements = *meta.TotalElements
	}

	p := Pagina{
		Content:       empresas,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    CalcularTotalPaginas(totalElements, pageSize),
		LastPage:      true,
	}
	if meta.PageNumber != nil {
		p.PageNumber = *meta.PageNumber
	}
	if meta.TotalPages != nil {
		p.TotalPages = *meta.TotalPages
	}
	if meta.LastPage != nil {
		p.LastPage = *meta.LastPage
	}
	return p
}

// montarPaginaAgregada produz o envelope sintético do modo agrega-tudo.
// totalPages é sempre recalculado, nunca vem do upstream.
func montarPaginaAgregada(empresas []Empresa, pageSize int) Pagina {
	return Pagina{
		Content:       empresas,
		PageNumber:    0,
		PageSize:      pageSize,
		TotalElements: len(empresas),
		TotalPages:    CalcularTotalPaginas(len(empresas), pageSize),
		LastPage:      true,
	}
}

func paginaVazia(pageSize int) Pagina {
	return Pagina{
		Content:  []Empresa{},
		PageSize: pageSize,
		LastPage: true,
	}
}
