package empresa

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/virtualoffice-br/api-correspondencias/internal/busca"
	"github.com/virtualoffice-br/api-correspondencias/internal/espelho"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
)

// Atualizador mantém em memória o snapshot agrega-tudo de empresas.
// Eventos do barramento (empresa/correspondência mudou) pedem um refresh;
// rajadas de eventos são coalescidas pelo debounce e refreshes sobrepostos
// passam pela guarda, então só o resultado do pedido mais recente é
// comitado. Cada snapshot bem-sucedido é espelhado no banco local em
// best-effort.
type Atualizador struct {
	cliente  *Cliente
	pageSize int
	log      *logrus.Entry

	// espelho opcional: DB nil desliga a persistência
	db   *gorm.DB
	repo espelho.Repository

	guarda   busca.Guarda
	debounce *busca.Debouncer
	cancelar func()

	mu       sync.RWMutex
	snapshot Pagina
}

func NovoAtualizador(cliente *Cliente, db *gorm.DB, barramento *notificacao.Barramento, quieto time.Duration, pageSize int, log *logrus.Entry) *Atualizador {
	a := &Atualizador{
		cliente:  cliente,
		pageSize: pageSize,
		log:      log,
		db:       db,
		repo:     espelho.NewRepository(),
		debounce: busca.NovoDebouncer(quieto),
		snapshot: paginaVazia(pageSize),
	}
	a.cancelar = barramento.Assinar(func(notificacao.Evento) {
		a.debounce.Acionar(a.Atualizar)
	})
	return a
}

// Iniciar aquece o snapshot a partir do espelho (se houver) e dispara o
// primeiro refresh de verdade.
func (a *Atualizador) Iniciar() {
	if a.db != nil {
		if registros, err := a.repo.ListarTodas(a.db); err != nil {
			a.log.WithError(err).Warn("não foi possível aquecer snapshot a partir do espelho")
		} else if len(registros) > 0 {
			empresas := make([]Empresa, 0, len(registros))
			for _, r := range registros {
				var raw RawPayload
				if err := json.Unmarshal([]byte(r.Payload), &raw); err != nil {
					continue
				}
				empresas = append(empresas, MapearEmpresa(raw))
			}
			a.mu.Lock()
			a.snapshot = montarPaginaAgregada(empresas, a.pageSize)
			a.mu.Unlock()
			a.log.WithField("empresas", len(empresas)).Info("snapshot aquecido do espelho")
		}
	}
	go a.Atualizar()
}

// Atualizar faz o refresh agrega-tudo agora. Resultado só é comitado se
// nenhum refresh mais novo tiver sido pedido enquanto este rodava.
func (a *Atualizador) Atualizar() {
	token := a.guarda.Emitir()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pagina, err := a.cliente.BuscarTodasEmpresas(ctx, a.pageSize)
	if err != nil {
		// descarte silencioso também para erro obsoleto
		if a.guarda.Vigente(token) {
			a.log.WithError(err).Warn("refresh do snapshot falhou")
		}
		return
	}

	comitado := a.guarda.Aplicar(token, func() {
		a.mu.Lock()
		a.snapshot = pagina
		a.mu.Unlock()
	})
	if !comitado {
		return
	}

	a.log.WithField("empresas", pagina.TotalElements).Info("snapshot de empresas atualizado")
	a.espelhar(pagina)
}

// espelhar grava o snapshot no banco local. Falha aqui nunca afeta a visão.
func (a *Atualizador) espelhar(pagina Pagina) {
	if a.db == nil {
		return
	}
	registros := make([]espelho.EmpresaEspelhada, 0, len(pagina.Content))
	for _, e := range pagina.Content {
		payload, err := json.Marshal(e.Raw)
		if err != nil {
			continue
		}
		r := espelho.EmpresaEspelhada{
			EmpresaID:  e.ID,
			CustomerID: e.CustomerID,
			Payload:    string(payload),
		}
		if e.NomeEmpresa != nil {
			r.Nome = *e.NomeEmpresa
		}
		if e.CNPJ != nil {
			r.CNPJ = *e.CNPJ
		}
		if e.Email != nil {
			r.Email = *e.Email
		}
		if e.Telefone != nil {
			r.Telefone = *e.Telefone
		}
		if e.Situacao != nil {
			r.Situacao = *e.Situacao
		}
		registros = append(registros, r)
	}
	if err := a.repo.SubstituirTodas(a.db, registros); err != nil {
		a.log.WithError(err).Warn("não foi possível espelhar snapshot")
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
