package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zapatende/landing-api/internal/infra/database"
	"github.com/zapatende/landing-api/internal/infra/http/handlers"
	mw "github.com/zapatende/landing-api/internal/infra/http/middleware"
	"github.com/zapatende/landing-api/internal/infra/integration/atende"
	"github.com/zapatende/landing-api/internal/infra/integration/openai"
	"github.com/zapatende/landing-api/internal/infra/mail"
	"github.com/zapatende/landing-api/internal/infra/queue"
	"github.com/zapatende/landing-api/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Banco (opcional: sem DATABASE_URL o site roda em modo degradado)
	var db *sql.DB
	var leadRepo usecase.LeadRepository
	var linkRepo usecase.ShortLinkRepository

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		leadRepo = database.NewLeadRepository(db)
		linkRepo = database.NewShortLinkRepository(db)
	} else {
		leadRepo = database.NewNoopLeadRepository()
		linkRepo = database.NewNoopShortLinkRepository()
	}

	// 2. Email (opcional)
	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
		)
	} else {
		mailSender = mail.NewNoopSender()
	}

	// 3. Integrações
	upstream := atende.NewClient(os.Getenv("UPSTREAM_API_URL"))
	chatModel := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))

	// 4. Fila de analytics (opcional). Sem RabbitMQ o clique é gravado
	// direto no banco, em background.
	var rabbitConn *amqp.Connection
	var clickDispatcher usecase.ClickDispatcher

	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbit, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ indisponível (%v): cliques vão direto pro banco", err)
			clickDispatcher = usecase.NewStoreClickDispatcher(linkRepo)
		} else {
			defer rabbit.Conn.Close()
			defer rabbit.Ch.Close()
			rabbitConn = rabbit.Conn

			worker := queue.NewWorker(rabbit.Ch, linkRepo)
			go worker.Start(queue.QueueName)

			clickDispatcher = queue.NewProducer(rabbit.Conn, rabbit.Ch)
		}
	} else {
		clickDispatcher = usecase.NewStoreClickDispatcher(linkRepo)
	}

	// 5. UseCases
	ownerPhone := os.Getenv("OWNER_PHONE")
	if ownerPhone == "" {
		ownerPhone = "5511987654321"
	}

	deckURL := os.Getenv("SLIDE_DECK_URL")
	if deckURL == "" {
		deckURL = "https://zapatende.com.br/apresentacao.pdf"
	}

	shortBaseURL := os.Getenv("SHORT_BASE_URL")
	if shortBaseURL == "" {
		shortBaseURL = "https://zapatende.com.br"
	}

	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, mailSender, upstream, ownerPhone)
	slideDeckUC := usecase.NewRequestSlideDeckUseCase(leadRepo, mailSender, deckURL)
	createLinkUC := usecase.NewCreateShortLinkUseCase(linkRepo, shortBaseURL)
	resolveLinkUC := usecase.NewResolveShortLinkUseCase(linkRepo, clickDispatcher)
	chatUC := usecase.NewChatDemoUseCase(chatModel)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC)
	slideDeckHandler := handlers.NewSlideDeckHandler(slideDeckUC)
	onboardingHandler := handlers.NewOnboardingHandler(upstream)
	sendHandler := handlers.NewSendHandler(upstream)
	chatHandler := handlers.NewChatHandler(chatUC)
	linkHandler := handlers.NewShortLinkHandler(createLinkUC, resolveLinkUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(mw.Metrics)

	r.Post("/leads", leadHandler.CaptureLead)
	r.Post("/slide-deck", slideDeckHandler.Handle)
	r.Post("/onboarding/signup", onboardingHandler.Handle)
	r.Post("/send", sendHandler.Handle)
	r.Post("/chat", chatHandler.Handle)
	r.Post("/links", linkHandler.Create)
	r.Get("/l/{slug}", linkHandler.Redirect)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 API da landing ZapAtende rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
