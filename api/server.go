package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/parascreen/parascreen-api/logmodule"
	"github.com/parascreen/parascreen-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Assessor runs the validate, score and classify pipeline over a single
// form submission. The reference time is passed in so the pipeline stays
// deterministic under test.
type Assessor interface {
	Assess(raw schema.RawSubmission, now time.Time) (*schema.RiskAssessment, []string)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// assessment pipeline
	assessor Assessor

	// artificial delay before returning a computed assessment, used to
	// simulate a backend round trip for interactive clients. Zero
	// disables it.
	resultDelay time.Duration
}

// NewServer new instance of server
func NewServer(assessor Assessor, resultDelay time.Duration) *Server {
	return &Server{
		assessor:    assessor,
		resultDelay: resultDelay,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	// the expected caller is a browser form
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.GET("/tiers", s.riskTiers)

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("", s.createAssessment)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Parascreen 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
