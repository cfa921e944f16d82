package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/virtualoffice-br/api-correspondencias/internal/aditivo"
	"github.com/virtualoffice-br/api-correspondencias/internal/auth"
	"github.com/virtualoffice-br/api-correspondencias/internal/config"
	"github.com/virtualoffice-br/api-correspondencias/internal/correspondencia"
	"github.com/virtualoffice-br/api-correspondencias/internal/empresa"
	"github.com/virtualoffice-br/api-correspondencias/internal/espelho"
	"github.com/virtualoffice-br/api-correspondencias/internal/historico"
	"github.com/virtualoffice-br/api-correspondencias/internal/httpclient"
	"github.com/virtualoffice-br/api-correspondencias/internal/notificacao"
	"github.com/virtualoffice-br/api-correspondencias/internal/unidade"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Carregar()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.NewEntry(logger)

	// Banco local é só espelho do snapshot de empresas: sem ele o serviço
	// sobe mesmo assim, apenas sem cache entre reinícios.
	db, err := espelho.Conectar(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLModeDisable)
	if err != nil {
		log.WithError(err).Warn("espelho indisponível, seguindo sem cache local")
		db = nil
	}

	barramento := notificacao.NovoBarramento()

	httpCorrespondencias := httpclient.New(cfg.CorrespondenciasBase, log.WithField("upstream", "correspondencias"))
	httpAuth := httpclient.New(cfg.AuthBase, log.WithField("upstream", "auth"))

	// Clientes
	empresaCliente := empresa.NovoCliente(httpCorrespondencias, log.WithField("componente", "empresa"))
	correspCliente := correspondencia.NovoCliente(httpCorrespondencias, log.WithField("componente", "correspondencia"))
	historicoCliente := historico.NovoCliente(httpCorrespondencias, log.WithField("componente", "historico"))
	unidadeCliente := unidade.NovoCliente(httpCorrespondencias)
	aditivoCliente := aditivo.NovoCliente(httpCorrespondencias, cfg.AditivoBase, log.WithField("componente", "aditivo"))
	avisos := notificacao.NovoCliente(httpCorrespondencias)
	authCliente := auth.NovoCliente(httpAuth)

	// Atualizadores mantêm os snapshots quentes, cada um com seu debounce
	atualizador := empresa.NovoAtualizador(empresaCliente, db, barramento, cfg.DebounceEmpresas, 50, log.WithField("componente", "atualizador"))
	atualizador.Iniciar()
	correspAtualizador := correspondencia.NovoAtualizador(correspCliente, barramento, cfg.DebounceCorrespondencias, 50, log.WithField("componente", "atualizador-correspondencias"))
	correspAtualizador.Iniciar()

	// Handlers
	empresaHandler := empresa.NewHandler(empresaCliente, atualizador, barramento)
	correspHandler := correspondencia.NewHandler(correspCliente, avisos, correspAtualizador, barramento)
	historicoHandler := historico.NewHandler(historicoCliente)
	unidadeHandler := unidade.NewHandler(unidadeCliente)
	aditivoHandler := aditivo.NewHandler(aditivoCliente)
	authHandler := auth.NewHandler(authCliente, cfg.SessionSecret, cfg.AdminEmail, cfg.AdminSenhaHash, log.WithField("componente", "auth"))

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Tudo abaixo exige sessão
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao(cfg.SessionSecret))

	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Rotas de empresas
	api.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	api.HandleFunc("/empresas/todas", empresaHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/empresas/snapshot", empresaHandler.Snapshot).Methods("GET")
	api.HandleFunc("/empresas/busca", empresaHandler.BuscarPorNome).Methods("GET")
	api.HandleFunc("/empresas", empresaHandler.CriarPorNome).Methods("POST")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}/situacao", empresaHandler.AlterarSituacao).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Deletar).Methods("DELETE")

	// Rotas de correspondências
	api.HandleFunc("/correspondencias", correspHandler.Listar).Methods("GET")
	api.HandleFunc("/correspondencias/snapshot", correspHandler.Snapshot).Methods("GET")
	api.HandleFunc("/correspondencias", correspHandler.Criar).Methods("POST")
	api.HandleFunc("/correspondencias/{id}/status", correspHandler.AlterarStatus).Methods("PATCH")
	api.HandleFunc("/correspondencias/aviso", correspHandler.EnviarAviso).Methods("POST")
	api.HandleFunc("/correspondencias/{id}", correspHandler.Apagar).Methods("DELETE")

	// Rotas de histórico
	api.HandleFunc("/historico", historicoHandler.Listar).Methods("GET")

	// Rotas de unidades
	api.HandleFunc("/unidades", unidadeHandler.Listar).Methods("GET")
	api.HandleFunc("/unidades/busca", unidadeHandler.BuscarPorNome).Methods("GET")

	// Rotas de aditivos
	api.HandleFunc("/aditivos", aditivoHandler.Criar).Methods("POST")
	api.HandleFunc("/aditivos/download", aditivoHandler.Baixar).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.DashboardOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: c.Handler(r),
	}

	go func() {
		sinais := make(chan os.Signal, 1)
		signal.Notify(sinais, os.Interrupt, syscall.SIGTERM)
		<-sinais
		log.Info("encerrando")
		atualizador.Fechar()
		correspAtualizador.Fechar()
		srv.Close()
	}()

	log.WithField("addr", cfg.ListenAddr).Info("servidor no ar")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("servidor caiu")
	}
}
