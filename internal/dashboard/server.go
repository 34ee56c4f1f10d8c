// Package dashboard serves the password-gated "send message as the bot"
// bridge. Every request re-validates the shared secret; there is no login
// session and no state kept between requests.
package dashboard

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"

	"server-warden/internal/auditlog"
	"server-warden/internal/config"
	"server-warden/internal/moderation"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	password string
	svc      *moderation.Service
	audit    *auditlog.Logger
	port     int
}

// New builds the dashboard server on the shared action client and audit
// logger.
func New(cfg *config.Config, actions moderation.ActionClient, audit *auditlog.Logger) *Server {
	return &Server{
		password: cfg.DashboardPassword,
		svc:      moderation.NewService(actions),
		audit:    audit,
		port:     cfg.Port,
	}
}

// Router returns the HTTP surface: the form page, the send endpoint, and 404
// for everything else.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleForm)
	r.Post("/sendmessage", s.handleSendMessage)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		htmlError(w, http.StatusNotFound, "404 Not Found")
	})
	// A wrong method on a known path is a 404 too, same as unknown paths.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		htmlError(w, http.StatusNotFound, "404 Not Found")
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down dashboard server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Dashboard server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		// Log the error but do NOT call log.Fatal — that would kill the whole process.
		log.Printf("[ERR] Dashboard server exited: %v", err)
	}
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		htmlError(w, http.StatusBadRequest, "400 Bad Request")
		return
	}

	password := r.PostFormValue("password")
	channelID := r.PostFormValue("channelId")
	message := r.PostFormValue("message")

	// Credential check comes first, before any remote call. An unset secret
	// closes the bridge entirely rather than matching an empty submission.
	// Constant-time so the comparison leaks nothing about the secret.
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		htmlError(w, http.StatusForbidden, "403 Forbidden: Invalid Password")
		return
	}

	res, channel, err := s.svc.Send(channelID, message)
	if err != nil {
		switch moderation.KindOf(err) {
		case moderation.ValidationFailed:
			htmlError(w, http.StatusBadRequest, "400 Bad Request: Invalid or Non-Text Channel ID")
		default:
			log.Printf("[ERR] Dashboard send failed: %v", err)
			htmlError(w, http.StatusInternalServerError, "500 Server Error: Could not send message. Check Bot Permissions.")
		}
		return
	}

	s.audit.Emit(auditlog.NewEvent(res))

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, "<h1>Message Sent Successfully!</h1><p>Channel: %s</p>", channel.Name)
}

func htmlError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<h1>%s</h1>", msg)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, formPage)
}

// The form never embeds the credential; the password is typed per submit and
// checked server-side only.
const formPage = `<!DOCTYPE html>
<html>
<head>
    <title>Bot Dashboard</title>
    <style>body { font-family: sans-serif; }</style>
</head>
<body>
    <h1>Server Warden Dashboard</h1>
    <form method="POST" action="/sendmessage">
        <label for="password">Password:</label><br>
        <input type="password" id="password" name="password" required><br><br>
        <label for="channelId">Channel ID:</label><br>
        <input type="text" id="channelId" name="channelId" required placeholder="e.g., 123456789012345678"><br><br>
        <label for="message">Message:</label><br>
        <textarea id="message" name="message" required rows="5" cols="50"></textarea><br><br>
        <input type="submit" value="Send Message to Channel">
    </form>
    <p><strong>Note:</strong> Channel ID can be copied by enabling Discord Developer Mode.</p>
</body>
</html>
`
