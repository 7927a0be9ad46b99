package main

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"lumetric/internal/config"
	"lumetric/internal/constants"
	"lumetric/internal/handlers"
	"lumetric/internal/repository"
	"lumetric/internal/services"
	"lumetric/internal/tasks"
	"lumetric/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Global filesystems that will be populated by either assets_dev.go or assets_prod.go at startup.
var templatesFS fs.FS
var staticFS fs.FS

func createRenderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	add := func(name string, files ...string) {
		tpl, err := template.ParseFS(templatesFS, files...)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		r.Add(name, tpl)
	}

	add("landing.html", "base.html", "landing.html")
	add("insights.html", "base.html", "insights.html")
	add("article.html", "base.html", "article.html")
	add("editor.html", "base.html", "editor.html")
	add("login.html", "base.html", "login.html")
	add("404.html", "base.html", "404.html")
	add("error.html", "base.html", "error.html")

	return r
}

func main() {
	cfg := config.Load()

	db, err := utils.InitDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	postRepo := repository.NewPostRepository(db)
	intakeRepo := repository.NewIntakeRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	settingService := services.NewSettingService(settingRepo)

	// The configured base URL is authoritative over the seeded default; it
	// feeds the share links built for open articles.
	err = settingService.UpdateSettings(map[string]string{
		constants.SettingBaseURL: cfg.BaseURL,
	})
	if err != nil {
		log.Printf("failed to sync base url setting: %v", err)
	}

	feedService := services.NewFeedService(postRepo)
	postService := services.NewPostService(postRepo, settingService)
	intakeService := services.NewIntakeService(intakeRepo)

	landingHandler := handlers.NewLandingHandler(intakeService)
	blogHandler := handlers.NewBlogHandler(feedService, postService)
	studioHandler := handlers.NewStudioHandler(postService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	authHandler := handlers.NewAuthHandler(settingService)
	apiHandler := handlers.NewAPIHandler(feedService, postService)

	r := gin.Default()
	r.HTMLRender = createRenderer()

	store := cookie.NewStore([]byte("secret-key-should-be-changed"))
	store.Options(sessions.Options{
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("lumetric_session", store))

	r.Use(handlers.LocaleMiddleware())
	r.Use(handlers.SettingsMiddleware(settingService))

	r.StaticFS("/static", http.FS(staticFS))

	// Landing page
	r.GET("/", landingHandler.Landing)
	r.POST("/consultation", landingHandler.SubmitLead)
	r.POST("/newsletter", landingHandler.Subscribe)

	// Insights (blog)
	r.GET("/insights", blogHandler.Insights)
	r.POST("/insights/fire", blogHandler.Fire)
	r.POST("/insights/apply", intakeHandler.Apply)

	// Access gate
	r.GET("/login", authHandler.ShowLoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Authoring studio
	studio := r.Group("/studio")
	studio.Use(handlers.AuthMiddleware())
	{
		studio.GET("/", studioHandler.ShowEditor)
		studio.POST("/publish", studioHandler.Publish)
		studio.POST("/profile", studioHandler.SaveProfile)
	}

	// API
	api := r.Group("/api/v1")
	api.Use(handlers.APIAuthMiddleware(settingService))
	{
		api.GET("/posts", apiHandler.FindPosts)
		api.POST("/posts", apiHandler.CreatePost)
		api.POST("/posts/:id/fire", apiHandler.FirePost)
	}

	r.NoRoute(blogHandler.NotFound)

	scheduler := tasks.NewScheduler(settingService, postService)
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("server starting on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}
