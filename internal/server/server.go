package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// API is the subset of *vacefron.Client the preview server needs
type API interface {
	Render(ctx context.Context, endpoint string, args vacefron.Args) (vacefron.Image, error)
	DiscordServerWithCreator(ctx context.Context) (vacefron.DiscordServerInfo, error)
}

// Handler serves the preview routes
type Handler struct {
	api API
}

// New returns a Handler backed by api
func New(api API) *Handler {
	return &Handler{api: api}
}

// Routes registers the preview endpoints on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /render/{endpoint}", h.HandleRender)
	mux.HandleFunc("GET /api/endpoints", h.HandleEndpoints)
	mux.HandleFunc("GET /api/discord", h.HandleDiscord)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

// HandleRender renders the endpoint named in the path with the query
// arguments and streams the image back
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("endpoint")
	if _, ok := vacefron.LookupEndpoint(name); !ok {
		h.writeError(w, "Unknown endpoint: "+name, http.StatusNotFound)
		return
	}

	args := vacefron.Args{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			args[key] = values[0]
		}
	}

	img, err := h.api.Render(r.Context(), name, args)
	if err != nil {
		h.writeError(w, err.Error(), statusFor(err))
		return
	}

	slog.Info("Rendering image", "endpoint", name, "url", img.URL())
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Vacefron-URL", img.URL())
	n, err := img.Stream(r.Context(), w)
	if err != nil {
		if n == 0 {
			h.writeError(w, err.Error(), statusFor(err))
			return
		}
		// headers are gone once the first byte is written
		slog.Error("Failed to stream image", "endpoint", name, "error", err)
	}
}

type endpointInfo struct {
	Name    string      `json:"name"`
	Summary string      `json:"summary"`
	Params  []paramInfo `json:"params"`
}

type paramInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Usage    string `json:"usage"`
}

// HandleEndpoints lists the endpoints and their arguments
func (h *Handler) HandleEndpoints(w http.ResponseWriter, r *http.Request) {
	var out []endpointInfo
	for _, e := range vacefron.Endpoints() {
		info := endpointInfo{Name: e.Name, Summary: e.Summary}
		for _, p := range e.Params {
			info.Params = append(info.Params, paramInfo{
				Name:     p.Name,
				Type:     paramTypeName(p.Type),
				Required: p.Required,
				Usage:    p.Usage,
			})
		}
		out = append(out, info)
	}
	h.writeJSON(w, out)
}

// HandleDiscord returns the support server and the creator invite
func (h *Handler) HandleDiscord(w http.ResponseWriter, r *http.Request) {
	info, err := h.api.DiscordServerWithCreator(r.Context())
	if err != nil {
		h.writeError(w, err.Error(), statusFor(err))
		return
	}
	h.writeJSON(w, map[string]string{
		"discord_server": info.Server,
		"creator_invite": info.CreatorInvite,
	})
}

func paramTypeName(t vacefron.ParamType) string {
	switch t {
	case vacefron.ParamInt:
		return "int"
	case vacefron.ParamBool:
		return "bool"
	default:
		return "string"
	}
}

// statusFor maps a client error back to the status the preview server answers with
func statusFor(err error) int {
	var (
		apiErr   *vacefron.Error
		validErr *vacefron.ValidationError
	)
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case vacefron.KindBadRequest:
			return http.StatusBadRequest
		case vacefron.KindNotFound:
			return http.StatusNotFound
		case vacefron.KindInternalServerError:
			return http.StatusInternalServerError
		}
	}
	return http.StatusBadGateway
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
