package main

import (
	"net/http"

	"github.com/AgroFrete/api-cotacoes/internal/auditoria"
	"github.com/AgroFrete/api-cotacoes/internal/auth"
	"github.com/AgroFrete/api-cotacoes/internal/config"
	"github.com/AgroFrete/api-cotacoes/internal/cotacao"
	"github.com/AgroFrete/api-cotacoes/internal/cte"
	"github.com/AgroFrete/api-cotacoes/internal/grupo"
	"github.com/AgroFrete/api-cotacoes/internal/logger"
	"github.com/AgroFrete/api-cotacoes/internal/notificacao"
	"github.com/AgroFrete/api-cotacoes/internal/relatorios"
	"github.com/AgroFrete/api-cotacoes/internal/safra"
	"github.com/AgroFrete/api-cotacoes/internal/transportadora"
	"github.com/AgroFrete/api-cotacoes/internal/usuario"
	"github.com/AgroFrete/api-cotacoes/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		ServiceName: "api-cotacoes",
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	if err := auth.Configurar(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("erro na configuração de auth")
	}

	conn, err := db.Conectar(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&cotacao.Cotacao{},
		&cotacao.Produto{},
		&cotacao.TransportadoraCotacao{},
		&transportadora.Transportadora{},
		&safra.Safra{},
		&grupo.Grupo{},
		&cte.CTE{},
		&auditoria.Auditoria{},
	); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	notificador := notificacao.New(cfg.WebhookAlertaURL, log)
	limpadorCTE := cte.NewLimpador(log)

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	cotacaoHandler := cotacao.NewHandler(conn, notificador, limpadorCTE, log)
	transportadoraHandler := transportadora.NewHandler(conn)
	safraHandler := safra.NewHandler(conn)
	grupoHandler := grupo.NewHandler(conn)
	relatoriosHandler := relatorios.NewHandler(conn)
	auditoriaHandler := auditoria.NewHandler(conn)
	cteHandler := cte.NewHandler(conn, cfg.DiretorioUploads, log)

	// Router
	r := mux.NewRouter()
	r.Use(logger.Middleware(log))

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/usuarios/{id}/reset-senha", usuarioHandler.ResetarSenha).Methods("POST")

	// Rotas de cotações
	api.HandleFunc("/cotacoes", cotacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/cotacoes", cotacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/cotacoes/{id}", cotacaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cotacoes/{id}", cotacaoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cotacoes/{id}", cotacaoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/cotacoes/{id}/transportadoras/{tid}/status", cotacaoHandler.AtualizarStatusTransportadora).Methods("PATCH")

	// Rotas do cadastro de transportadoras
	api.HandleFunc("/transportadoras", transportadoraHandler.Criar).Methods("POST")
	api.HandleFunc("/transportadoras", transportadoraHandler.Listar).Methods("GET")
	api.HandleFunc("/transportadoras/{id}", transportadoraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/transportadoras/{id}", transportadoraHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/transportadoras/{id}", transportadoraHandler.Deletar).Methods("DELETE")

	// Rotas de safras e grupos
	api.HandleFunc("/safras", safraHandler.Criar).Methods("POST")
	api.HandleFunc("/safras", safraHandler.Listar).Methods("GET")
	api.HandleFunc("/safras/{id}", safraHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/safras/{id}", safraHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/grupos", grupoHandler.Criar).Methods("POST")
	api.HandleFunc("/grupos", grupoHandler.Listar).Methods("GET")
	api.HandleFunc("/grupos/{id}", grupoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/grupos/{id}", grupoHandler.Deletar).Methods("DELETE")

	// Relatórios
	api.HandleFunc("/relatorios/desempenho", relatoriosHandler.Desempenho).Methods("GET")
	api.HandleFunc("/relatorios/periodo", relatoriosHandler.Periodo).Methods("GET")

	// Auditoria
	api.HandleFunc("/auditoria", auditoriaHandler.Listar).Methods("GET")

	// CTEs (PDF)
	api.HandleFunc("/cotacoes/{id}/transportadoras/{tid}/cte", cteHandler.Upload).Methods("POST")
	api.HandleFunc("/cotacoes/{id}/cte", cteHandler.Listar).Methods("GET")
	api.HandleFunc("/cte/{id}", cteHandler.Download).Methods("GET")
	api.HandleFunc("/cte/{id}", cteHandler.Deletar).Methods("DELETE")

	handler := cors.AllowAll().Handler(r)

	log.Info().Str("porta", cfg.Porta).Msg("servidor iniciado")
	if err := http.ListenAndServe(":"+cfg.Porta, handler); err != nil {
		log.Fatal().Err(err).Msg("erro no servidor HTTP")
	}
}
