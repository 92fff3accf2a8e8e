package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/CEMAMI09/EVOQFORMS/internal/config"
	"github.com/CEMAMI09/EVOQFORMS/internal/handlers"
	sessionstore "github.com/CEMAMI09/EVOQFORMS/internal/session"
	"github.com/CEMAMI09/EVOQFORMS/internal/services"
	"github.com/CEMAMI09/EVOQFORMS/internal/storage"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitHandler(c *gin.Context, info ratelimit.Info) {
	c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, store *sessionstore.Store, uploads *storage.UploadStore) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	cookieStore := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})
	router.Use(sessions.Sessions("evoqsession", cookieStore))

	// --- Now that cookie sessions are initialized, resolve server-side sessions ---
	router.Use(SessionLoader(store))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	webDir := config.Conf.Web.Directory
	router.Static("/assets", filepath.Join(webDir, "assets"))
	router.Static("/uploads", uploads.Dir())

	// Public form pages and the post-submit confirmation page.
	router.StaticFile("/intakeform.html", filepath.Join(webDir, "intakeform.html"))
	router.StaticFile("/quiz.html", filepath.Join(webDir, "quiz.html"))
	router.StaticFile("/completed.html", filepath.Join(webDir, "completed.html"))

	// The dashboard shell must not be reachable by its literal filename;
	// only the session-gated /dashboard route serves it.
	router.GET("/dashboard.html", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	// Handlers and routes
	submissionService := services.NewSubmissionService(log)
	authHandler := handlers.NewAuthHandler(log, store)
	intakeHandler := handlers.NewIntakeHandler(log, submissionService, uploads)
	quizHandler := handlers.NewQuizHandler(log, submissionService)
	chartsHandler := handlers.NewChartsHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/login", authHandler.ShowLoginPage)
	router.POST("/login", limiter, authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Public submission endpoints; the forms are filled in by customers and
	// operators without an account.
	router.POST("/submit", intakeHandler.Submit)
	router.POST("/submit-quiz", quizHandler.Submit)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
		authorized.GET("/dashboard", func(c *gin.Context) {
			c.File(filepath.Join(webDir, "dashboard.html"))
		})
		authorized.GET("/dashboard/charts", chartsHandler.ShowCharts)

		api := authorized.Group("/api")
		{
			api.GET("/intake-forms", intakeHandler.List)
			api.GET("/quiz-submissions", quizHandler.List)
			api.GET("/quiz-submissions/:id", quizHandler.GetByID)
		}
	}

	return router
}
