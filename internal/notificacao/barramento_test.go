package notificacao

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarramentoEntregaParaTodosAssinantes(t *testing.T) {
	b := NovoBarramento()

	var mu sync.Mutex
	recebidos := map[string]Evento{}
	var wg sync.WaitGroup
	wg.Add(2)

	cancelarA := b.Assinar(func(ev Evento) {
		mu.Lock()
		recebidos["a"] = ev
		mu.Unlock()
		wg.Done()
	})
	defer cancelarA()
	cancelarB := b.Assinar(func(ev Evento) {
		mu.Lock()
		recebidos["b"] = ev
		mu.Unlock()
		wg.Done()
	})
	defer cancelarB()

	ev := Evento{Entidade: EntidadeEmpresa, Acao: AcaoCriar, ID: 42}
	b.Publicar(ev)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, ev, recebidos["a"])
	assert.Equal(t, ev, recebidos["b"])
}

func TestBarramentoAssinanteCanceladoNaoRecebe(t *testing.T) {
	b := NovoBarramento()

	recebeu := make(chan Evento, 1)
	cancelar := b.Assinar(func(ev Evento) { recebeu <- ev })
	cancelar()

	b.Publicar(Evento{Entidade: EntidadeCorrespondencia, Acao: AcaoExcluir, ID: 1})

	select {
	case <-recebeu:
		t.Fatal("assinante cancelado não deveria receber evento")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBarramentoPublicarSemAssinantesNaoBloqueia(t *testing.T) {
	b := NovoBarramento()
	b.Publicar(Evento{Entidade: EntidadeEmpresa, Acao: AcaoAtualizar})
}
