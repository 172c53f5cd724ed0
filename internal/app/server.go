package app

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"pubguide/internal/charts"
	"pubguide/internal/content"
	"pubguide/internal/download"
	"pubguide/internal/guide"
)

const downloadName = "academic-publishing-guide"

// Server wires handlers, templates, and content together.
type Server struct {
	cfg       Config
	logger    *zap.Logger
	lib       *content.Library
	renderer  *guide.Renderer
	sessions  *SessionStore
	figures   *figureCache
	captions  captionIndex
	md        *markdown
	templates *template.Template
	mux       *http.ServeMux
	handler   http.Handler
}

// NewServer constructs an HTTP handler serving the guide from lib.
func NewServer(lib *content.Library, cfg Config, logger *zap.Logger) (*Server, error) {
	renderer, err := guide.NewRenderer(lib)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:       cfg,
		logger:    logger,
		lib:       lib,
		renderer:  renderer,
		sessions:  NewSessionStore(cfg.Session.TTL, cfg.Session.Max),
		figures:   newFigureCache(),
		captions:  newCaptionIndex(lib),
		md:        newMarkdown(),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	srv.mux.HandleFunc("/", srv.handleIndex)
	srv.mux.HandleFunc("/page/", srv.handlePage)
	srv.mux.HandleFunc("/figures/", srv.handleFigure)
	srv.mux.HandleFunc("/download", srv.handleDownload)
	srv.mux.HandleFunc("/healthz", srv.handleHealth)
	srv.handler = logRequests(logger, srv.mux)

	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Sessions exposes the session store so the caller can run its sweeper.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *guide.Navigator {
	var id string
	if c, err := r.Cookie(s.cfg.Session.Cookie); err == nil {
		id = c.Value
	}
	newID, nav := s.sessions.Acquire(id)
	// refreshed on every request; the session TTL slides
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.Cookie,
		Value:    newID,
		Path:     "/",
		MaxAge:   int(s.cfg.Session.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nav
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderError(w, http.StatusNotFound, "Page not found")
		return
	}
	nav := s.session(w, r)
	http.Redirect(w, r, "/page/"+guide.Slug(nav.Current()), http.StatusFound)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/page/")
	if raw == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		http.Error(w, "bad page", http.StatusBadRequest)
		return
	}

	id, err := guide.PageBySlug(decoded)
	if err != nil {
		s.renderError(w, http.StatusNotFound, "Page not found")
		return
	}

	nav := s.session(w, r)
	if err := nav.Select(id); err != nil {
		s.renderError(w, http.StatusNotFound, "Page not found")
		return
	}

	surface := newHTMLSurface(s.md, s.figures, "/page/"+guide.Slug(id), r.URL.Query())
	if err := s.renderer.Render(id, surface); err != nil {
		s.logger.Error("render page", zap.String("page", string(id)), zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "This page could not be rendered")
		return
	}
	body, err := surface.HTML()
	if err != nil {
		s.logger.Error("render markdown", zap.String("page", string(id)), zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "This page could not be rendered")
		return
	}

	dl := download.EncodeLink(download.PlaceholderPDF(), guide.Slug(id), "Download this page as PDF")

	page, err := s.lib.Page(string(id))
	if err != nil {
		s.logger.Error("load page", zap.String("page", string(id)), zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "This page could not be rendered")
		return
	}
	data := struct {
		Site     content.Site
		Heading  string
		Nav      []navItem
		Content  template.HTML
		Download template.HTML
	}{
		Site:     s.lib.Site(),
		Heading:  page.Heading,
		Nav:      navItems(id),
		Content:  body,
		Download: template.HTML(dl),
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "layout.gohtml", data); err != nil {
		s.logger.Error("execute layout", zap.String("page", string(id)), zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "This page could not be rendered")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func navItems(current guide.PageID) []navItem {
	pages := guide.Pages()
	items := make([]navItem, len(pages))
	for i, id := range pages {
		items[i] = navItem{Title: string(id), Slug: guide.Slug(id), Active: id == current}
	}
	return items
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	file := strings.TrimPrefix(r.URL.Path, "/figures/")
	ext := path.Ext(file)
	format, err := charts.ParseFormat(ext)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimSuffix(file, ext)

	caption := s.captions.lookup(r.URL.Query().Get("page"), name)
	data, err := s.figures.get(name, format, caption)
	if err != nil {
		if errors.Is(err, charts.ErrUnknownFigure) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("render figure", zap.String("figure", name), zap.Error(err))
		http.Error(w, "failed to render figure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName+".pdf"))
	_, _ = w.Write(download.PlaceholderPDF())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	data := struct {
		Site    content.Site
		Status  int
		Message string
	}{
		Site:    s.lib.Site(),
		Status:  status,
		Message: message,
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "error.gohtml", data); err != nil {
		s.logger.Error("execute error page", zap.Error(err))
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
