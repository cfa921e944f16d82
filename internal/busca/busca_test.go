package busca

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuardaDescartaRespostaAtrasada(t *testing.T) {
	var g Guarda
	var resultado string
	carregamentos := 0

	// requisição A emitida primeiro, requisição B depois
	tokenA := g.Emitir()
	tokenB := g.Emitir()

	// B resolve primeiro e aplica
	aplicou := g.Aplicar(tokenB, func() {
		resultado = "resultado-B"
		carregamentos++
	})
	assert.True(t, aplicou)

	// A resolve por último mas já está obsoleta: descarte silencioso
	aplicou = g.Aplicar(tokenA, func() {
		resultado = "resultado-A"
		carregamentos++
	})
	assert.False(t, aplicou)

	assert.Equal(t, "resultado-B", resultado)
	assert.Equal(t, 1, carregamentos, "o indicador de carregamento deve liberar exatamente uma vez")
}

func TestGuardaErroObsoletoTambemDescartado(t *testing.T) {
	var g Guarda
	antigo := g.Emitir()
	g.Emitir()

	var erroVisivel error
	g.Aplicar(antigo, func() { erroVisivel = assert.AnError })
	assert.NoError(t, erroVisivel)
}

func TestGuardaConcorrente(t *testing.T) {
	var g Guarda
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok := g.Emitir()
			g.Aplicar(tok, func() {})
		}()
	}
	wg.Wait()
	assert.False(t, g.Vigente(1), "tokens antigos nunca voltam a valer")
}

func TestDebouncerCoalesce(t *testing.T) {
	d := NovoDebouncer(50 * time.Millisecond)
	defer d.Parar()

	var mu sync.Mutex
	var termos []string

	// "a", "ab", "abc" digitados dentro do período quieto
	for _, termo := range []string{"a", "ab", "abc"} {
		termo := termo
		d.Acionar(func() {
			mu.Lock()
			termos = append(termos, termo)
			mu.Unlock()
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"abc"}, termos, "só o último termo deve ser comitado")
}

func TestDebouncerPararCancelaPendente(t *testing.T) {
	d := NovoDebouncer(30 * time.Millisecond)
	disparou := make(chan struct{}, 1)
	d.Acionar(func() { disparou <- struct{}{} })
	d.Parar()

	select {
	case <-disparou:
		t.Fatal("disparo deveria ter sido cancelado")
	case <-time.After(100 * time.Millisecond):
	}
}
