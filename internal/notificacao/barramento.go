package notificacao

import "sync"

// Entidades e ações carregadas nos eventos do barramento.
const (
	EntidadeEmpresa         = "EMPRESA"
	EntidadeCorrespondencia = "CORRESPONDENCIA"

	AcaoCriar     = "CRIAR"
	AcaoAtualizar = "ATUALIZAR"
	AcaoExcluir   = "EXCLUIR"
)

// Evento avisa as demais visões que um registro mudou e que elas devem
// recarregar seus próprios dados.
type Evento struct {
	Entidade string
	Acao     string
	ID       int64
}

// Barramento é o registro de observadores do processo. Publicação é
// fire-and-forget: sem ack, sem ordem garantida entre assinantes e sem
// replay — quem não está assinado no momento simplesmente perde o evento.
type Barramento struct {
	mu         sync.Mutex
	proximo    int
	assinantes map[int]func(Evento)
}

func NovoBarramento() *Barramento {
	return &Barramento{assinantes: make(map[int]func(Evento))}
}

// Assinar registra fn e devolve a função de cancelamento. O dono da
// assinatura chama o cancelamento no desmonte da visão.
func (b *Barramento) Assinar(fn func(Evento)) (cancelar func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.proximo
	b.proximo++
	b.assinantes[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.assinantes, id)
	}
}

// Publicar entrega o evento a todos os assinantes atuais, cada um em sua
// própria goroutine para que um assinante lento não segure os demais.
func (b *Barramento) Publicar(ev Evento) {
	b.mu.Lock()
	fns := make([]func(Evento), 0, len(b.assinantes))
	for _, fn := range b.assinantes {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		go fn(ev)
	}
}
