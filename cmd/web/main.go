package main

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/crucial707/auth-dashboard/internal/client"
	"github.com/crucial707/auth-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const (
	cookieName  = "dash_token"
	defaultPort = "3000"
	defaultAPI  = "http://localhost:5000/api"
	envWebPort  = "DASH_WEB_PORT"
	envAPIURL   = "DASH_API_URL"
)

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)
	api := client.New(apiBase)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Public
	r.Get("/login", loginForm)
	r.Post("/login", loginSubmit(api))
	r.Get("/register", registerForm)
	r.Post("/register", registerSubmit(api))
	r.Get("/logout", logout)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", redirectDashboard)
		r.Get("/dashboard", dashboard(api))
		r.Get("/users", usersList(api))
	})

	log.Printf("Web UI running on http://localhost:%s (API: %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requireAuth redirects to /login when the token cookie is missing. The token
// itself is not validated here: data calls go through the facade, which falls
// back to demo payloads rather than failing, so a stale token still renders.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := r.Cookie(cookieName)
		if err != nil || token.Value == "" {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func redirectDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func loginForm(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	renderTemplate(w, "login.html", nil)
}

func loginSubmit(api *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		if email == "" || password == "" {
			renderTemplate(w, "login.html", map[string]string{"Error": "Email and password are required"})
			return
		}

		result := api.Login(r.Context(), email, password)
		if !result.Success {
			renderTemplate(w, "login.html", map[string]string{"Error": result.Message})
			return
		}

		next := r.URL.Query().Get("next")
		if next == "" {
			next = "/dashboard"
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    result.Token,
			Path:     "/",
			MaxAge:   3600, // matches the token's one-hour expiry
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, next, http.StatusFound)
	}
}

func registerForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "register.html", nil)
}

func registerSubmit(api *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		if email == "" || password == "" {
			renderTemplate(w, "register.html", map[string]string{"Error": "Email and password are required"})
			return
		}

		result := api.Register(r.Context(), name, email, password)
		if !result.Success {
			renderTemplate(w, "register.html", map[string]string{"Error": result.Message})
			return
		}

		renderTemplate(w, "login.html", map[string]string{"Message": result.Message})
	}
}

func logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// monthRow is one bar of the dashboard chart; Pct is the bar width relative
// to the busiest month.
type monthRow struct {
	Label   string
	Users   int
	Revenue int
	Pct     int
}

func dashboard(api *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, _ := r.Cookie(cookieName)
		data := api.GetData(r.Context(), token.Value)

		maxUsers := 1
		for _, u := range data.ChartData.Users {
			if u > maxUsers {
				maxUsers = u
			}
		}
		rows := make([]monthRow, 0, len(data.ChartData.Labels))
		for i, label := range data.ChartData.Labels {
			rows = append(rows, monthRow{
				Label:   label,
				Users:   data.ChartData.Users[i],
				Revenue: data.ChartData.Revenue[i],
				Pct:     data.ChartData.Users[i] * 100 / maxUsers,
			})
		}

		renderTemplate(w, "dashboard.html", map[string]interface{}{
			"Summary":  data.Summary,
			"Months":   rows,
			"Traffic":  data.ChartData.Traffic,
			"Direct":   data.ChartData.Traffic[models.TrafficDirect],
			"Social":   data.ChartData.Traffic[models.TrafficSocial],
			"Referral": data.ChartData.Traffic[models.TrafficReferral],
			"Demo":     token.Value == client.FakeToken,
		})
	}
}

func usersList(api *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, _ := r.Cookie(cookieName)
		result := api.GetUsers(r.Context(), token.Value)

		renderTemplate(w, "users.html", map[string]interface{}{
			"Users": result.Users,
			"Demo":  token.Value == client.FakeToken,
		})
	}
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// Login and register are standalone pages; everything else lives in the layout.
	if name == "login.html" || name == "register.html" {
		t := template.Must(template.New("").Parse(string(content)))
		_ = t.ExecuteTemplate(w, "page", data)
		return
	}

	layout, _ := templatesFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template execute: %v", err)
	}
}
