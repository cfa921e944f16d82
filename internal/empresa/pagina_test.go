package empresa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodificar(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestDetectarPaginaAthena(t *testing.T) {
	payload := decodificar(t, `{
		"content": [{"id": 1}, {"id": 2}],
		"pageNumber": 0, "pageSize": 2, "totalElements": 4, "totalPages": 2, "lastPage": false
	}`)

	registros, meta, ok := DetectarPaginaAthena(payload)
	require.True(t, ok)
	assert.Len(t, registros, 2)
	assert.Equal(t, 0, *meta.PageNumber)
	assert.Equal(t, 2, *meta.TotalPages)
	assert.False(t, *meta.LastPage)
}

func TestDetectarPaginaAthenaFalhaFechada(t *testing.T) {
	// pageNumber com tipo errado rejeita o formato, sem coerção
	payload := decodificar(t, `{"content": [], "pageNumber": "3"}`)
	_, _, ok := DetectarPaginaAthena(payload)
	assert.False(t, ok)

	// content obrigatório
	_, _, ok = DetectarPaginaAthena(decodificar(t, `{"pageNumber": 0}`))
	assert.False(t, ok)

	// content com item que não é objeto
	_, _, ok = DetectarPaginaAthena(decodificar(t, `{"content": [1, 2]}`))
	assert.False(t, ok)

	// nem objeto
	_, _, ok = DetectarPaginaAthena(decodificar(t, `[1,2,3]`))
	assert.False(t, ok)
}

func TestDetectarPaginaConexa(t *testing.T) {
	registros, _, ok := DetectarPaginaConexa(decodificar(t, `{"data": [{"customerId": 9}]}`))
	require.True(t, ok)
	assert.Len(t, registros, 1)

	// data ausente vale como lista vazia
	registros, _, ok = DetectarPaginaConexa(decodificar(t, `{"totalElements": 0}`))
	require.True(t, ok)
	assert.Empty(t, registros)

	// data presente com tipo errado rejeita
	_, _, ok = DetectarPaginaConexa(decodificar(t, `{"data": "nada"}`))
	assert.False(t, ok)

	// lastPage com tipo errado rejeita
	_, _, ok = DetectarPaginaConexa(decodificar(t, `{"data": [], "lastPage": "true"}`))
	assert.False(t, ok)
}

func TestDeteccaoDeterministica(t *testing.T) {
	payload := decodificar(t, `{"content": [{"id": 1}], "totalElements": 1}`)
	for i := 0; i < 10; i++ {
		_, _, ok := DetectarPaginaAthena(payload)
		assert.True(t, ok)
	}
}

func TestCalcularTotalPaginas(t *testing.T) {
	assert.Equal(t, 6, CalcularTotalPaginas(101, 20))
	assert.Equal(t, 0, CalcularTotalPaginas(0, 20))
	assert.Equal(t, 1, CalcularTotalPaginas(1, 20))
	assert.Equal(t, 5, CalcularTotalPaginas(100, 20))
	assert.Equal(t, 1, CalcularTotalPaginas(7, 0), "pageSize inválido com elementos clampa em 1")
	assert.Equal(t, 0, CalcularTotalPaginas(0, 0))
}

func TestMontarPaginaDerivaMetadadosAusentes(t *testing.T) {
	registros := []RawPayload{{"id": float64(1)}, {"id": float64(2)}, {"id": float64(3)}}
	p := montarPagina(registros, 2, metaPagina{})

	assert.Equal(t, 3, p.TotalElements)
	assert.Equal(t, 2, p.PageSize)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 0, p.PageNumber)
	assert.True(t, p.LastPage)
}

func TestMontarPaginaAgregadaRecalculaTotais(t *testing.T) {
	empresas := make([]Empresa, 137)
	p := montarPaginaAgregada(empresas, 50)

	assert.Equal(t, 0, p.PageNumber)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 137, p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.LastPage)
}
