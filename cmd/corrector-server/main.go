// Command corrector-server exposes the Spanish/Catalan corrector as a
// JSON REST + WebSocket API.
//
// Endpoints:
//
//	POST /api/correct          body: {"text":"...","language":"es"}
//	POST /api/customdict/add   body: {"word":"...","language":"es"}
//	POST /api/customdict/remove body: {"word":"...","language":"es"}
//	GET  /api/customdict       ?language=es
//	GET  /api/stats/top        (top 20 rules)
//	GET  /ws/correct?language=es   (one text per message in, corrected text out)
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/esgramatica/corrector"
	_ "github.com/esgramatica/corrector/catalan" // registers "ca"
	"github.com/esgramatica/corrector/customdict"
	_ "github.com/esgramatica/corrector/spanish" // registers "es"
	"github.com/esgramatica/corrector/stats"
)

// server holds every loaded Engine, keyed by language code, plus the
// optional Redis/SQLite-backed stores; one Engine per supported
// language, built once at startup (only its custom words grow later,
// via MergeCustomWords).
type server struct {
	engines     map[string]*corrector.Engine
	customDicts map[string]*customdict.CustomDict
	stats       *stats.Store
	upgrader    websocket.Upgrader
}

func newServer(dataDir string, useMmap bool, redisClient *redis.Client, statsStore *stats.Store) (*server, error) {
	s := &server{
		engines:     make(map[string]*corrector.Engine),
		customDicts: make(map[string]*customdict.CustomDict),
		stats:       statsStore,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, lang := range []string{"es", "ca"} {
		cfg := corrector.DefaultConfig()
		cfg.DataDir = dataDir
		cfg.UseMmap = useMmap
		engine, err := corrector.NewEngine(lang, cfg)
		if err != nil {
			return nil, err
		}
		s.engines[lang] = engine
		if redisClient != nil {
			cd := customdict.New(redisClient, lang)
			s.customDicts[lang] = cd
			words, err := cd.All(context.Background())
			if err != nil {
				return nil, err
			}
			engine.MergeCustomWords(words)
		}
	}
	return s, nil
}

type correctRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type correctResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) engineFor(language string) (*corrector.Engine, bool) {
	e, ok := s.engines[language]
	return e, ok
}

func (s *server) handleCorrect(c *gin.Context) {
	var req correctRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" || req.Language == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "body must be JSON with non-empty 'text' and 'language' fields"})
		return
	}
	engine, ok := s.engineFor(req.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported language: " + req.Language})
		return
	}
	result, triggers := engine.CorrectDetailed(req.Text)
	s.recordTriggers(req.Language, triggers)
	c.JSON(http.StatusOK, correctResponse{Result: result})
}

// recordTriggers persists rule-trigger telemetry when a stats store is
// configured; it is a no-op otherwise.
func (s *server) recordTriggers(language string, triggers []corrector.RuleTrigger) {
	if s.stats == nil {
		return
	}
	for _, t := range triggers {
		var err error
		if t.Kind == "spelling" {
			err = s.stats.RecordSpellingTrigger(language)
		} else {
			err = s.stats.RecordGrammarTrigger(language, t.RuleID)
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to record rule trigger")
		}
	}
}

type customDictWordRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
}

func (s *server) handleCustomDictAdd(c *gin.Context) {
	var req customDictWordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Word == "" || req.Language == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "body must be JSON with non-empty 'word' and 'language' fields"})
		return
	}
	cd, ok := s.customDicts[req.Language]
	if !ok {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "custom dictionary store not configured"})
		return
	}
	if err := cd.Add(c.Request.Context(), req.Word); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if engine, ok := s.engineFor(req.Language); ok {
		engine.MergeCustomWords([]string{req.Word})
	}
	c.Status(http.StatusNoContent)
}

func (s *server) handleCustomDictRemove(c *gin.Context) {
	var req customDictWordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Word == "" || req.Language == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "body must be JSON with non-empty 'word' and 'language' fields"})
		return
	}
	cd, ok := s.customDicts[req.Language]
	if !ok {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "custom dictionary store not configured"})
		return
	}
	if err := cd.Remove(c.Request.Context(), req.Word); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	// The in-memory trie has no delete; a removed word stops being
	// accepted only after the process restarts and reloads from Redis.
	c.Status(http.StatusNoContent)
}

type customDictListResponse struct {
	Words []string `json:"words"`
}

func (s *server) handleCustomDictList(c *gin.Context) {
	language := c.Query("language")
	cd, ok := s.customDicts[language]
	if !ok {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "custom dictionary store not configured"})
		return
	}
	words, err := cd.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, customDictListResponse{Words: words})
}

func (s *server) handleStatsTop(c *gin.Context) {
	if s.stats == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "stats store not configured"})
		return
	}
	limit := 20
	rows, err := s.stats.TopRules(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rows})
}

// handleWebSocketCorrect streams texts in and corrected texts out over
// a single connection, one correction per message.
func (s *server) handleWebSocketCorrect(c *gin.Context) {
	language := c.Query("language")
	engine, ok := s.engineFor(language)
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported language: " + language})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		result, triggers := engine.CorrectDetailed(string(message))
		s.recordTriggers(language, triggers)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(result)); err != nil {
			break
		}
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("requestID", c.GetString("requestID")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	}
}

// corsMiddleware adapts rs/cors into a gin middleware, since gin's
// handler chain doesn't accept a plain http.Handler wrapper.
func corsMiddleware() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		ctx.Next()
	}
}

func main() {
	dataDir := flag.String("data", "data", "path to the dictionary data directory")
	useMmap := flag.Bool("mmap", false, "memory-map dictionary files instead of reading them")
	addr := flag.String("addr", ":8080", "listen address")
	redisAddr := flag.String("redis-addr", "", "Redis address for the custom-dictionary store (empty disables it)")
	statsDB := flag.String("stats-db", "", "path to the SQLite telemetry database (empty disables it)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	var redisClient *redis.Client
	if *redisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: *redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	}

	var statsStore *stats.Store
	if *statsDB != "" {
		var err error
		statsStore, err = stats.Open(*statsDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open stats database")
		}
		defer statsStore.Close()
	}

	log.Info().Str("data", *dataDir).Msg("loading dictionaries")
	srv, err := newServer(*dataDir, *useMmap, redisClient, statsStore)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionaries")
	}
	log.Info().Msg("dictionaries loaded")

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware())
	engine.Use(corsMiddleware())

	engine.POST("/api/correct", srv.handleCorrect)
	engine.POST("/api/customdict/add", srv.handleCustomDictAdd)
	engine.POST("/api/customdict/remove", srv.handleCustomDictRemove)
	engine.GET("/api/customdict", srv.handleCustomDictList)
	engine.GET("/api/stats/top", srv.handleStatsTop)
	engine.GET("/ws/correct", srv.handleWebSocketCorrect)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := engine.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
