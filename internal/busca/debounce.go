package busca

import (
	"sync"
	"time"
)

// Debouncer converte uma entrada que muda rápido (cada tecla do campo de
// busca) em um único disparo depois de um período quieto. Cada Acionar
// cancela o disparo pendente e reinicia a contagem.
//
// O período quieto vem da configuração da visão (500ms empresas, 1000ms
// correspondências), nunca de literal espalhado.
type Debouncer struct {
	mu     sync.Mutex
	quieto time.Duration
	timer  *time.Timer
}

func NovoDebouncer(quieto time.Duration) *Debouncer {
	return &Debouncer{quieto: quieto}
}

// Acionar agenda fn para depois do período quieto, cancelando qualquer
// agendamento anterior ainda não disparado.
func (d *Debouncer) Acionar(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quieto, fn)
}

// Parar cancela o disparo pendente, se houver. Usado no desmonte da visão.
func (d *Debouncer) Parar() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
