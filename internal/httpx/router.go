package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"portfolio-api/ent"
	"portfolio-api/internal/config"
	"portfolio-api/internal/esx"
	"portfolio-api/internal/httpx/auth"
	"portfolio-api/internal/httpx/certificates"
	"portfolio-api/internal/httpx/chatbot"
	"portfolio-api/internal/httpx/contacts"
	"portfolio-api/internal/httpx/forms"
	"portfolio-api/internal/httpx/mw"
	"portfolio-api/internal/httpx/seo"
	"portfolio-api/internal/httpx/tasks"
	"portfolio-api/internal/httpx/technologies"
	"portfolio-api/internal/httpx/variants"
	"portfolio-api/internal/mqx"
	"portfolio-api/internal/redisx"
)

// Providers carries the optional infrastructure clients. Every field may be
// nil; handlers degrade gracefully without them.
type Providers struct {
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// Register mounts all routes. Reads are public; every mutating route sits
// behind mw.RequireUser explicitly so the auth dependency is visible at the
// mount site.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, p *Providers) {
	if p == nil {
		p = &Providers{}
	}

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/sitemap.xml", seo.SitemapHandler(client, cfg.Site.BaseURL))

	// parse bearer tokens for everything below; the gate itself is per-route
	app.Use(mw.JWTMiddleware(func(token string) (string, string, error) {
		claims, err := auth.ParseAndValidate(cfg, token)
		if err != nil {
			return "", "", err
		}
		return claims.Subject, claims.Kind, nil
	}))

	api := app.Group("/api/v1")
	gate := mw.RequireUser()

	// auth
	api.Post("/auth/login", auth.LoginHandler(cfg, client))
	api.Post("/auth/refresh", auth.RefreshHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler())
	api.Get("/auth/me", gate, auth.MeHandler(client))

	// technology aggregate
	api.Get("/technologies", technologies.ListTechnologiesHandler(client))
	api.Post("/technologies", gate, technologies.CreateTechnologyHandler(client, p.ES))
	// fixed path must be mounted before the :id routes
	api.Put("/technologies/icons/by-old-id", gate, technologies.UpdateIconByOldIDHandler(client))
	api.Get("/technologies/:id", technologies.GetTechnologyHandler(client))
	api.Put("/technologies/:id", gate, technologies.UpdateTechnologyHandler(client, p.ES))
	api.Delete("/technologies/:id", gate, technologies.DeleteTechnologyHandler(client, p.ES))
	api.Put("/technologies/:id/icon-urls", gate, technologies.UpdateTechIconUrlsHandler(client))

	// icon variants
	api.Get("/variants", variants.ListVariantsHandler(client))
	api.Post("/variants", gate, variants.CreateVariantHandler(client))
	api.Put("/variants/:id", gate, variants.RenameVariantHandler(client))
	api.Delete("/variants/:id", gate, variants.DeleteVariantHandler(client, p.ES))

	// search
	api.Get("/search/technologies", technologies.SearchTechnologiesHandler(client, p.ES))

	// certificates
	api.Get("/certificates", certificates.ListCertificatesHandler(client))
	api.Post("/certificates", gate, certificates.CreateCertificateHandler(client))
	api.Put("/certificates/:id", gate, certificates.UpdateCertificateHandler(client))
	api.Delete("/certificates/:id", gate, certificates.DeleteCertificateHandler(client))

	// contact form + admin inbox
	api.Post("/contact",
		mw.RateLimitDefault(p.RDB, cfg.Contact.RateWindowSec, cfg.Contact.RateLimit),
		contacts.SubmitContactHandler(client, p.MQ))
	api.Get("/contact-messages", gate, contacts.ListMessagesHandler(client))
	api.Put("/contact-messages/:id/read", gate, contacts.MarkMessageReadHandler(client))
	api.Delete("/contact-messages/:id", gate, contacts.DeleteMessageHandler(client))

	// custom forms
	api.Get("/forms", gate, forms.ListFormsHandler(client))
	api.Get("/forms/by-slug/:slug", forms.GetFormBySlugHandler(client))
	api.Post("/forms", gate, forms.CreateFormHandler(client))
	api.Put("/forms/:id", gate, forms.UpdateFormHandler(client))
	api.Delete("/forms/:id", gate, forms.DeleteFormHandler(client))

	// tasks
	api.Get("/tasks", gate, tasks.ListTasksHandler(client))
	api.Post("/tasks", gate, tasks.CreateTaskHandler(client))
	api.Put("/tasks/:id", gate, tasks.UpdateTaskHandler(client))
	api.Delete("/tasks/:id", gate, tasks.DeleteTaskHandler(client))

	// seo metadata
	api.Get("/seo", gate, seo.ListSeoEntriesHandler(client))
	api.Post("/seo", gate, seo.CreateSeoEntryHandler(client))
	api.Put("/seo/:id", gate, seo.UpdateSeoEntryHandler(client))
	api.Delete("/seo/:id", gate, seo.DeleteSeoEntryHandler(client))

	// chatbot settings
	api.Get("/chatbot/settings", gate, chatbot.GetSettingsHandler(client))
	api.Put("/chatbot/settings", gate, chatbot.UpdateSettingsHandler(client))
}
