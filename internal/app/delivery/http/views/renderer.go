package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/app/services/core/access"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/utils"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"age":      utils.Age,
	"time12":   utils.FormatTime12Hour,
	"inr":      utils.FormatCurrencyINR,
	"date":     utils.FormatDisplayDate,
	"datetime": utils.FormatDisplayDateTime,
	"initials": utils.Initials,
	"lower":    strings.ToLower,
}

// Renderer executes the embedded page templates and owns the browser-facing
// cookie session (opaque session ID plus one-shot toast flashes). Each page
// template defines "content"; layout.html wraps it with the chrome, or with
// the bare shell when no user is present.
type Renderer struct {
	pages map[string]*template.Template
	store *sessions.CookieStore
	Log   *zap.Logger
}

// View describes one page render. ToastError carries failure messages for
// this response only; one-shot flashes from a prior redirect are popped on
// top of it.
type View struct {
	Page       string
	Title      string
	Data       interface{}
	ToastError []string
}

// Page is what layout.html and the content templates receive.
type Page struct {
	Title        string
	CurrentPath  string
	User         *models.UserProfile
	Menu         []access.MenuEntry
	ToastSuccess []string
	ToastError   []string
	Data         interface{}
}

func NewRenderer(internalConfig *config.InternalConfig, logger *zap.Logger) *Renderer {
	store := sessions.NewCookieStore([]byte(internalConfig.App.CookieSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   internalConfig.Session.ExpiredTimeInHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   internalConfig.App.Env == "production",
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		logger.Fatal("failed to enumerate page templates", zap.Error(err))
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pageFile := range pageFiles {
		name := strings.TrimSuffix(path.Base(pageFile), ".html")
		pages[name] = template.Must(
			template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", pageFile),
		)
	}

	return &Renderer{
		pages: pages,
		store: store,
		Log:   logger,
	}
}

func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, view View) {
	tmpl, ok := r.pages[view.Page]
	if !ok {
		r.Log.Error("unknown page template", zap.String("page", view.Page))
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
		return
	}

	successes, errors := r.popToasts(w, req)
	page := &Page{
		Title:        view.Title,
		CurrentPath:  req.URL.Path,
		ToastSuccess: successes,
		ToastError:   append(errors, view.ToastError...),
		Data:         view.Data,
	}
	if sess, ok := req.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && sess.IsComplete() {
		page.User = &sess.User
		page.Menu = access.VisibleMenu(sess.User.Role)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		r.Log.Error("failed to render page",
			zap.String("page", view.Page),
			zap.Error(err),
		)
	}
}

func (r *Renderer) Redirect(w http.ResponseWriter, req *http.Request, location string) {
	http.Redirect(w, req, location, constvars.StatusSeeOther)
}
