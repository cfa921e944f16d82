// Package busca reúne os dois mecanismos usados pelas visões de listagem:
// o descarte de respostas atrasadas e o debounce de termo de busca.
package busca

import "sync"

// Guarda garante que só o resultado da requisição mais recente seja
// aplicado ao estado da visão, mesmo quando respostas chegam fora da
// ordem de emissão.
//
// Uso: capture o token de Emitir() ao disparar a busca e só aplique o
// resultado (sucesso ou erro) se Vigente(token) ainda for verdadeiro.
// Resultado obsoleto é descartado em silêncio, sem erro.
type Guarda struct {
	mu    sync.Mutex
	atual uint64
}

// Emitir registra uma nova requisição e devolve o token dela.
// Qualquer token anterior passa a ser obsoleto.
func (g *Guarda) Emitir() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.atual++
	return g.atual
}

// Vigente informa se o token ainda corresponde à última requisição emitida.
func (g *Guarda) Vigente(token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token == g.atual
}

// Aplicar executa commit somente se o token ainda for o vigente e devolve
// se o commit aconteceu. O lock não é mantido durante o commit.
func (g *Guarda) Aplicar(token uint64, commit func()) bool {
	if !g.Vigente(token) {
		return false
	}
	commit()
	return true
}
