package empresa

// Os endpoints de registro único às vezes devolvem o objeto embrulhado no
// Optional do backend: {value: ...}, {present: false} ou {empty: true}.
// Opcional resolve as três variantes em um único lugar, sem checagens de
// presença espalhadas pelos call sites.

type variante int

const (
	optPresente variante = iota // {value: ...} com valor
	optAusente                  // {present:false}, {empty:true} ou value nulo
	optDireto                   // payload já é o objeto, sem embrulho
)

// Opcional é o resultado da interpretação de um payload de registro único.
type Opcional struct {
	variante variante
	valor    any
}

// InterpretarOpcional classifica o payload cru. Função pura.
func InterpretarOpcional(payload any) Opcional {
	if payload == nil {
		return Opcional{variante: optAusente}
	}
	m, ok := payload.(map[string]any)
	if !ok {
		return Opcional{variante: optDireto, valor: payload}
	}
	if v, existe := m["value"]; existe {
		if v == nil {
			return Opcional{variante: optAusente}
		}
		return Opcional{variante: optPresente, valor: v}
	}
	if presente, existe := m["present"]; existe && presente == false {
		return Opcional{variante: optAusente}
	}
	if vazio, existe := m["empty"]; existe && vazio == true {
		return Opcional{variante: optAusente}
	}
	return Opcional{variante: optDireto, valor: payload}
}

// Valor devolve o objeto desembrulhado, ou ok=false quando ausente.
func (o Opcional) Valor() (any, bool) {
	if o.variante == optAusente {
		return nil, false
	}
	return o.valor, true
}
