package empresa

// Helpers de leitura tolerante sobre o payload cru. Nunca coagem tipo:
// valor presente com tipo errado é tratado como ausente.

func obterString(raw RawPayload, chave string) *string {
	if v, ok := raw[chave].(string); ok && v != "" {
		return &v
	}
	return nil
}

func obterNumero(raw RawPayload, chave string) *int64 {
	// json.Unmarshal decodifica número JSON como float64
	if v, ok := raw[chave].(float64); ok {
		n := int64(v)
		return &n
	}
	return nil
}

func primeiroString(valor any) *string {
	lista, ok := valor.([]any)
	if !ok || len(lista) == 0 {
		return nil
	}
	if s, ok := lista[0].(string); ok && s != "" {
		return &s
	}
	return nil
}

func resolverCNPJ(raw RawPayload) *string {
	if direto := obterString(raw, "cnpj"); direto != nil {
		return direto
	}
	if legalPerson, ok := raw["legalPerson"].(map[string]any); ok {
		return obterString(legalPerson, "cnpj")
	}
	return nil
}

// resolverEmail: string direta, primeiro de `email` lista, primeiro de
// `emails` lista, por fim o texto de `emailsMessage`.
func resolverEmail(raw RawPayload) *string {
	if direto := obterString(raw, "email"); direto != nil {
		return direto
	}
	if primeiro := primeiroString(raw["email"]); primeiro != nil {
		return primeiro
	}
	if primeiro := primeiroString(raw["emails"]); primeiro != nil {
		return primeiro
	}
	return obterString(raw, "emailsMessage")
}

func resolverTelefone(raw RawPayload) *string {
	if direto := obterString(raw, "telefone"); direto != nil {
		return direto
	}
	if primeiro := primeiroString(raw["telefone"]); primeiro != nil {
		return primeiro
	}
	if direto := obterString(raw, "phone"); direto != nil {
		return direto
	}
	return primeiroString(raw["phone"])
}

// MapearEmpresa normaliza um registro cru de qualquer um dos upstreams
// para a forma canônica. Função total: nunca falha, campo irreconhecível
// vira nil e o payload original segue anexado em Raw.
func MapearEmpresa(raw RawPayload) Empresa {
	if raw == nil {
		raw = RawPayload{}
	}

	id := obterNumero(raw, "id")
	if id == nil {
		id = obterNumero(raw, "customerId")
	}
	customerID := obterNumero(raw, "customerId")
	if customerID == nil {
		customerID = obterNumero(raw, "id")
	}

	nome := obterString(raw, "nomeEmpresa")
	if nome == nil {
		nome = obterString(raw, "name")
	}
	if nome == nil {
		nome = obterString(raw, "nome")
	}

	return Empresa{
		ID:            id,
		CustomerID:    customerID,
		NomeEmpresa:   nome,
		CNPJ:          resolverCNPJ(raw),
		Email:         resolverEmail(raw),
		Telefone:      resolverTelefone(raw),
		StatusEmpresa: obterString(raw, "statusEmpresa"),
		Situacao:      obterString(raw, "situacao"),
		Mensagem:      obterString(raw, "mensagem"),
		Raw:           raw,
	}
}
