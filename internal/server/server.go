// Package server renders the portfolio page and handles contact form posts.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmedsharif09/portfolio/internal/config"
	"github.com/ahmedsharif09/portfolio/internal/contact"
	"github.com/ahmedsharif09/portfolio/internal/content"
	"github.com/ahmedsharif09/portfolio/internal/nav"
	"github.com/ahmedsharif09/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "portfolio_session"

// Server wires the page, the contact controllers and the optional metrics
// store into a gin engine.
type Server struct {
	cfg        *config.Config
	site       *content.Site
	contacts   *contact.Registry
	db         *store.DB
	adminToken string
	router     *gin.Engine
}

// New builds the server. db may be nil, which disables visitor tracking and
// the admin area.
func New(cfg *config.Config, site *content.Site, contacts *contact.Registry, db *store.DB) (*Server, error) {
	s := &Server{cfg: cfg, site: site, contacts: contacts, db: db}

	if db != nil && cfg.Admin.Password != "" {
		token, err := store.RandomToken()
		if err != nil {
			return nil, err
		}
		s.adminToken = token
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	s.router = r
	s.routes()
	return s, nil
}

// Router exposes the engine for tests and custom listeners.
func (s *Server) Router() *gin.Engine { return s.router }

// Run listens on the configured port.
func (s *Server) Run() error {
	log.Printf("Portfolio listening on :%s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}

func (s *Server) routes() {
	r := s.router
	if s.db != nil {
		r.Use(s.visitorTracking())
	}

	pub := s.cfg.PublicDir
	r.Static("/static", filepath.Join(pub, "static"))
	for _, asset := range []string{s.site.CVPath, s.site.ProfileImage} {
		if strings.HasPrefix(asset, "/") && !strings.HasPrefix(asset, "/static/") {
			r.StaticFile(asset, filepath.Join(pub, filepath.Base(asset)))
		}
	}

	r.GET("/", s.handleIndex)
	r.GET("/contact", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes()
}

type navItem struct {
	ID    string
	Label string
	Title string
}

func navItems() []navItem {
	items := make([]navItem, 0, len(nav.Sections))
	for _, sec := range nav.Sections {
		items = append(items, navItem{ID: string(sec), Label: sec.Label(), Title: string(sec)})
	}
	return items
}

// contactView is the data behind contact-form.html.
type contactView struct {
	State        contact.State
	Sending      bool
	Fields       contact.Fields
	FieldName    string
	FieldEmail   string
	FieldMessage string
}

func newContactView(res contact.Result) contactView {
	return contactView{
		State:        res.State,
		Sending:      res.Sending,
		Fields:       res.Fields,
		FieldName:    contact.FieldName,
		FieldEmail:   contact.FieldEmail,
		FieldMessage: contact.FieldMessage,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	ctrl := s.contacts.Get(s.session(c))
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":         s.site,
		"nav":          navItems(),
		"headerHeight": s.cfg.Nav.DefaultHeaderHeight,
		"contact":      newContactView(ctrl.Snapshot()),
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	ctrl := s.contacts.Get(s.session(c))
	c.HTML(http.StatusOK, "contact-form.html", newContactView(ctrl.Snapshot()))
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	ctrl := s.contacts.Get(s.session(c))
	fields := contact.Fields{
		Name:    c.PostForm(contact.FieldName),
		Email:   c.PostForm(contact.FieldEmail),
		Message: c.PostForm(contact.FieldMessage),
	}

	// The relay call must outlive a visitor navigating away.
	ctx := context.WithoutCancel(c.Request.Context())
	res, err := ctrl.Submit(ctx, fields)
	if errors.Is(err, contact.ErrInFlight) {
		log.Printf("Contact submission ignored: %v", err)
	}

	if c.GetHeader("HX-Request") != "true" {
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}
	c.HTML(http.StatusOK, "contact-form.html", newContactView(res))
}

// session returns the visitor's session id, issuing one if needed. The
// cookie is re-sent on every request so it expires together with the
// registry's idle timeout rather than a fixed time after the first visit.
func (s *Server) session(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		id = ""
	} else if _, err := uuid.Parse(id); err != nil {
		id = ""
	}
	if id == "" {
		id = uuid.New().String()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(s.cfg.Session.TTL.Seconds()), "/", "", false, true)
	return id
}
