package server

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmedsharif09/portfolio/internal/store"
)

const adminCookie = "admin_token"

// visitorTracking records page views with hashed IPs, skipping assets,
// admin pages and visitors that send Do Not Track.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" ||
			path == s.site.CVPath ||
			path == s.site.ProfileImage {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			if err := s.db.RecordVisit(ip, ua, path, time.Now()); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes() {
	r := s.router

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"site":     s.site,
			"tracking": s.db != nil,
		})
	})

	if s.adminToken == "" {
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		user := []byte(c.PostForm("username"))
		pass := []byte(c.PostForm("password"))
		okUser := subtle.ConstantTimeCompare(user, []byte(s.cfg.Admin.Username)) == 1
		okPass := subtle.ConstantTimeCompare(pass, []byte(s.cfg.Admin.Password)) == 1
		if !okUser || !okPass {
			log.Printf("Failed admin login attempt from %s", s.db.Hash(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", s.db.Hash(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.db.Stats(time.Now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"sessions": s.contacts.Len(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.db.Cleanup(time.Now(), store.Retention)
		if err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		log.Printf("Privacy cleanup run by admin from %s", s.db.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
