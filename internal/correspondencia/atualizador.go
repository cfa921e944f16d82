package correspondencia

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/busca"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
)

// Atualizador mantém em memória a primeira página de correspondências.
// Eventos de correspondência no barramento pedem um refresh; rajadas são
// coalescidas pelo debounce e refreshes sobrepostos passam pela guarda,
// então só o resultado do pedido mais recente é comitado.
type Atualizador struct {
	cliente  *Cliente
	pageSize int
	log      *logrus.Entry

	guarda   busca.Guarda
	debounce *busca.Debouncer
	cancelar func()

	mu       sync.RWMutex
	snapshot Pagina
}

func NovoAtualizador(cliente *Cliente, barramento *notificacao.Barramento, quieto time.Duration, pageSize int, log *logrus.Entry) *Atualizador {
	a := &Atualizador{
		cliente:  cliente,
		pageSize: pageSize,
		log:      log,
		debounce: busca.NovoDebouncer(quieto),
		snapshot: Pagina{Content: []Correspondencia{}, PageSize: pageSize, LastPage: true},
	}
	a.cancelar = barramento.Assinar(func(ev notificacao.Evento) {
		if ev.Entidade != notificacao.EntidadeCorrespondencia {
			return
		}
		a.debounce.Acionar(a.Atualizar)
	})
	return a
}

// Iniciar dispara o primeiro refresh em background.
func (a *Atualizador) Iniciar() {
	go a.Atualizar()
}

// Atualizar busca a primeira página agora. O resultado só é comitado se
// nenhum refresh mais novo tiver sido pedido enquanto este rodava.
func (a *Atualizador) Atualizar() {
	token := a.guarda.Emitir()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pagina, err := a.cliente.Listar(ctx, 0, a.pageSize, "")
	if err != nil {
		if a.guarda.Vigente(token) {
			a.log.WithError(err).Warn("refresh de correspondências falhou")
		}
		return
	}

	if a.guarda.Aplicar(token, func() {
		a.mu.Lock()
		a.snapshot = pagina
		a.mu.Unlock()
	}) {
		a.log.WithField("correspondencias", pagina.TotalElements).Info("snapshot de correspondências atualizado")
	}
}

// Snapshot devolve o último resultado comitado.
func (a *Atualizador) Snapshot() Pagina {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// Fechar cancela a assinatura no barramento e o debounce pendente.
func (a *Atualizador) Fechar() {
	a.cancelar()
	a.debounce.Parar()
}
